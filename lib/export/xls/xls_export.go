package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	dbmodels "jobboard-backend/models/db"
)

type Provider interface {
	ExportApplicationList(jobTitle string, list []dbmodels.JobApplication) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const (
	sheetName  = "Applications"
	dateLayout = "2006-01-02 15:04"
)

var applicationHeaders = []string{"Candidate", "Email", "Phone", "Status", "Applied at", "Resume", "Profile", "Cover letter"}

func (i impl) ExportApplicationList(jobTitle string, list []dbmodels.JobApplication) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	if jobTitle != "" {
		row++
		if err := writeColumn(f, sheet, 1, row, jobTitle); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования названия вакансии в xlsx")
		}
	}
	row, err := writeHeader(f, sheet, row, applicationHeaders, 28)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		_, err = writeApplicationData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err = f.SetSheetName(sheet, sheetName); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа в xlsx")
	}
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet string, list []dbmodels.JobApplication, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.CandidateName,
			item.CandidateEmail,
			item.Phone,
			item.Status.ToHuman(),
			item.AppliedAt.Format(dateLayout),
			item.ResumeURL,
			item.ProfileURL,
			item.CoverLetter,
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
