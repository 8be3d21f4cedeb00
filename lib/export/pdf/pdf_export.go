package pdfexport

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	jobapimodels "jobboard-backend/models/api/job"
)

const (
	defaultBrandColor = "#1F2937"
	pageMargin        = 15.0
	lineHeight        = 6.0
)

// GenerateJobPosting печатная версия вакансии, шапка в цвете страницы компании
func GenerateJobPosting(job jobapimodels.JobView, brandColor string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateJobPosting panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(job.Title, true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pageMargin

	r, g, b := hexToRGB(brandColor)
	pdf.SetFillColor(r, g, b)
	pdf.Rect(0, 0, pageWidth, 35, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(pageMargin, 10)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentWidth, 9, tr(job.Title), "", 1, "L", false, 0, "")
	if job.Company != nil {
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(contentWidth, 7, tr(job.Company.CompanyName), "", 1, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(42)
	pdf.SetFont("Helvetica", "", 11)
	meta := []string{job.Location, job.JobTypeName, job.ExperienceLevelName}
	if job.EmploymentType != "" {
		meta = append(meta, job.EmploymentType.ToHuman())
	}
	pdf.MultiCell(contentWidth, lineHeight, tr(strings.Join(nonEmpty(meta), "  |  ")), "", "L", false)
	if salary := FormatSalary(job.Salary); salary != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(contentWidth, lineHeight, tr("Salary: "+salary), "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(contentWidth, lineHeight, tr(job.Description), "", "L", false)

	writeList(pdf, tr, contentWidth, "Technical requirements", job.TechnicalRequirements)
	writeList(pdf, tr, contentWidth, "Soft skills", job.SoftSkills)
	writeList(pdf, tr, contentWidth, "Responsibilities", job.Responsibilities)
	writeList(pdf, tr, contentWidth, "Benefits", job.Benefits)

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeList(pdf *fpdf.Fpdf, tr func(string) string, width float64, title string, items []string) {
	if len(items) == 0 {
		return
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(width, 8, tr(title), "", "L", false)
	pdf.SetFont("Helvetica", "", 11)
	for _, item := range items {
		pdf.MultiCell(width, lineHeight, tr("- "+item), "", "L", false)
	}
}

// FormatSalary "USD 80,000 - 120,000", пустая строка если вилка не указана
func FormatSalary(salary jobapimodels.Salary) string {
	var amount string
	switch {
	case salary.Min != nil && salary.Max != nil && *salary.Min != *salary.Max:
		amount = groupThousands(*salary.Min) + " - " + groupThousands(*salary.Max)
	case salary.Min != nil:
		amount = groupThousands(*salary.Min)
	case salary.Max != nil:
		amount = "up to " + groupThousands(*salary.Max)
	default:
		return ""
	}
	if salary.Currency == "" {
		return amount
	}
	return salary.Currency + " " + amount
}

func groupThousands(value int) string {
	digits := strconv.Itoa(value)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	var sb strings.Builder
	for idx, ch := range digits {
		if idx > 0 && (len(digits)-idx)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(ch)
	}
	return sign + sb.String()
}

func hexToRGB(color string) (r, g, b int) {
	value := strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(value) == 3 {
		value = fmt.Sprintf("%c%c%c%c%c%c", value[0], value[0], value[1], value[1], value[2], value[2])
	}
	rgb, err := strconv.ParseUint(value, 16, 32)
	if len(value) != 6 || err != nil {
		return hexToRGB(defaultBrandColor)
	}
	return int(rgb >> 16 & 0xFF), int(rgb >> 8 & 0xFF), int(rgb & 0xFF)
}

func nonEmpty(list []string) []string {
	result := make([]string, 0, len(list))
	for _, item := range list {
		if strings.TrimSpace(item) != "" {
			result = append(result, item)
		}
	}
	return result
}
