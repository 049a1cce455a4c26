// Package listing — фильтрация и пагинация списков для браузинга заявок.
package listing

import (
	"strings"

	"github.com/Leganyst/labor-platform/internal/model"
)

// Сентинел "без ограничения" для фильтра по типу занятости.
const FilterAll = "all"

// FilterOptions — необязательные предикаты браузинга. Пустое значение
// (или FilterAll для JobType) отключает соответствующий предикат.
type FilterOptions struct {
	// Точное совпадение по job_type.
	JobType string
	// Подстрока в location без учёта регистра.
	Location string
	// Подстрока в title ИЛИ description без учёта регистра.
	Search string
}

// Filter возвращает подпоследовательность jobs, удовлетворяющую всем
// активным предикатам. Порядок сохраняется, входной срез не меняется.
func Filter(jobs []model.JobRequest, opts FilterOptions) []model.JobRequest {
	out := make([]model.JobRequest, 0, len(jobs))
	for _, job := range jobs {
		if Matches(job, opts) {
			out = append(out, job)
		}
	}
	return out
}

// Matches сообщает, проходит ли заявка все активные предикаты (AND).
func Matches(job model.JobRequest, opts FilterOptions) bool {
	return matchJobType(job, opts.JobType) &&
		matchLocation(job, opts.Location) &&
		matchSearch(job, opts.Search)
}

func matchJobType(job model.JobRequest, filter string) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	return string(job.JobType) == filter
}

func matchLocation(job model.JobRequest, filter string) bool {
	if filter == "" {
		return true
	}
	return containsFold(job.Location, filter)
}

func matchSearch(job model.JobRequest, term string) bool {
	if term == "" {
		return true
	}
	return containsFold(job.Title, term) || containsFold(job.Description, term)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
