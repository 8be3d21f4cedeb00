package jobapimodels

import (
	"strconv"
	"strings"

	apperrors "jobboard-backend/lib/utils/app-errors"
	"jobboard-backend/models"
	apimodels "jobboard-backend/models/api"
)

// JobFilter фильтр поиска вакансий, собирается только через ParseJobFilter
type JobFilter struct {
	apimodels.Pagination
	Search           string
	Location         string
	JobTypes         []models.JobType
	ExperienceLevels []models.ExperienceLevel
	Sort             models.JobSort
	// CompanyBrandingID выборка по странице компании (рекрутер видит черновики), не из запроса
	CompanyBrandingID string
	// ActiveOnly только опубликованные и в выборке по компании (публичная страница компании)
	ActiveOnly bool
}

func (f JobFilter) IsCompanyScope() bool {
	return f.CompanyBrandingID != ""
}

func (f JobFilter) IsActiveRequired() bool {
	return !f.IsCompanyScope() || f.ActiveOnly
}

// ParseJobFilter разбирает параметры запроса, неизвестные значения перечислений - ошибка, а не пропуск
func ParseJobFilter(params map[string]string) (JobFilter, error) {
	filter := JobFilter{
		Pagination: apimodels.Pagination{
			Page:  apimodels.DefaultPage,
			Limit: apimodels.DefaultLimit,
		},
		Sort:     models.JobSortDateDesc,
		Search:   strings.TrimSpace(params["search"]),
		Location: strings.TrimSpace(params["location"]),
	}
	details := map[string]string{}

	for _, value := range splitList(params["jobType"]) {
		jobType, err := models.ParseJobType(value)
		if err != nil {
			details["jobType"] = err.Error()
			break
		}
		filter.JobTypes = appendUniqueJobType(filter.JobTypes, jobType)
	}
	for _, value := range splitList(params["experienceLevel"]) {
		level, err := models.ParseExperienceLevel(value)
		if err != nil {
			details["experienceLevel"] = err.Error()
			break
		}
		filter.ExperienceLevels = appendUniqueLevel(filter.ExperienceLevels, level)
	}

	if raw, ok := params["page"]; ok && strings.TrimSpace(raw) != "" {
		page, err := strconv.Atoi(strings.TrimSpace(raw))
		switch {
		case err != nil || page <= 0:
			details["page"] = "must be a positive integer"
		case page > apimodels.MaxPage:
			details["page"] = "must be at most " + strconv.Itoa(apimodels.MaxPage)
		default:
			filter.Page = page
		}
	}
	if raw, ok := params["limit"]; ok && strings.TrimSpace(raw) != "" {
		limit, err := strconv.Atoi(strings.TrimSpace(raw))
		switch {
		case err != nil || limit <= 0:
			details["limit"] = "must be a positive integer"
		case limit > apimodels.MaxLimit:
			details["limit"] = "must be at most " + strconv.Itoa(apimodels.MaxLimit)
		default:
			filter.Limit = limit
		}
	}
	if raw := strings.TrimSpace(params["sort"]); raw != "" {
		sort := models.JobSort(strings.ToLower(raw))
		if err := sort.Validate(); err != nil {
			details["sort"] = err.Error()
		} else {
			filter.Sort = sort
		}
	}

	if len(details) != 0 {
		return JobFilter{}, apperrors.Validation("invalid query parameters", details)
	}
	return filter, nil
}

func splitList(raw string) []string {
	result := []string{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

func appendUniqueJobType(list []models.JobType, value models.JobType) []models.JobType {
	for _, item := range list {
		if item == value {
			return list
		}
	}
	return append(list, value)
}

func appendUniqueLevel(list []models.ExperienceLevel, value models.ExperienceLevel) []models.ExperienceLevel {
	for _, item := range list {
		if item == value {
			return list
		}
	}
	return append(list, value)
}
