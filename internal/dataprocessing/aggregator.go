package dataprocessing

import (
	"sort"
	"strings"

	"inscripcli/pkg/contracts/domain"
)

// maxChartLabelRunes is the display length beyond which an activity label
// is truncated with an ellipsis in chart projections. The untruncated label
// is always kept alongside for tooltips and exact matching.
const maxChartLabelRunes = 20

// Aggregate computes the chart-feeding counts for one record subset. It is
// pure and recomputed from the full given subset on every call.
//
// Shift and gender tallies carry a residual Desconocido bucket, so their
// totals always equal the subset size. The status tally only counts the
// three recognized statuses and has no residual bucket: rows with any other
// estado are dropped from it, so its sum may be lower than Total.
func Aggregate(records []domain.EnrollmentRecord) domain.EnrollmentStats {
	stats := domain.EnrollmentStats{
		Total: len(records),
		ByTurno: map[string]int{
			domain.ShiftMorning:   0,
			domain.ShiftAfternoon: 0,
			domain.ShiftNight:     0,
			domain.ShiftUnknown:   0,
		},
		ByEstado: map[string]int{
			domain.StatusAccepted: 0,
			domain.StatusPending:  0,
			domain.StatusRejected: 0,
		},
		ByGenero: map[string]int{
			domain.GenderFemale:  0,
			domain.GenderMale:    0,
			domain.GenderUnknown: 0,
		},
	}

	activityCounts := make(map[string]int)
	var activityOrder []string

	for _, rec := range records {
		switch rec.Turno {
		case domain.ShiftMorning, domain.ShiftAfternoon, domain.ShiftNight:
			stats.ByTurno[rec.Turno]++
		default:
			stats.ByTurno[domain.ShiftUnknown]++
		}

		estado := strings.TrimSpace(rec.Estado)
		if _, recognized := stats.ByEstado[estado]; recognized {
			stats.ByEstado[estado]++
		}

		switch rec.Genero {
		case domain.GenderFemale, domain.GenderMale:
			stats.ByGenero[rec.Genero]++
		default:
			stats.ByGenero[domain.GenderUnknown]++
		}

		if _, seen := activityCounts[rec.ActividadSimple]; !seen {
			activityOrder = append(activityOrder, rec.ActividadSimple)
		}
		activityCounts[rec.ActividadSimple]++
	}

	stats.ByActividad = make([]domain.ActivityCount, 0, len(activityOrder))
	for _, activity := range activityOrder {
		stats.ByActividad = append(stats.ByActividad, domain.ActivityCount{
			Activity: activity,
			Count:    activityCounts[activity],
		})
	}
	// Stable sort keeps encounter order among equal counts, so the output
	// is deterministic for any input order.
	sort.SliceStable(stats.ByActividad, func(i, j int) bool {
		return stats.ByActividad[i].Count > stats.ByActividad[j].Count
	})

	return stats
}

// ChartBuckets turns a count map into chart-ready buckets in the given key
// order, dropping zero-count entries.
func ChartBuckets(counts map[string]int, order []string) []domain.ChartBucket {
	buckets := make([]domain.ChartBucket, 0, len(order))
	for _, key := range order {
		if counts[key] == 0 {
			continue
		}
		buckets = append(buckets, domain.ChartBucket{
			Label:     truncateLabel(key),
			FullLabel: key,
			Count:     counts[key],
		})
	}
	return buckets
}

// ActivityChartBuckets projects the sorted activity counts into chart
// buckets, dropping zero counts and truncating long labels.
func ActivityChartBuckets(counts []domain.ActivityCount) []domain.ChartBucket {
	buckets := make([]domain.ChartBucket, 0, len(counts))
	for _, ac := range counts {
		if ac.Count == 0 {
			continue
		}
		buckets = append(buckets, domain.ChartBucket{
			Label:     truncateLabel(ac.Activity),
			FullLabel: ac.Activity,
			Count:     ac.Count,
		})
	}
	return buckets
}

func truncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= maxChartLabelRunes {
		return label
	}
	return string(runes[:maxChartLabelRunes]) + "…"
}
