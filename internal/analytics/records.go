// ABOUTME: Personal record derivation: max weight, max reps, max single-set volume.
// ABOUTME: Ties keep the chronologically earliest occurrence; callers see the top 10 by value.
package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/ironlog/internal/models"
)

// topRecordCount is how many records are surfaced to callers. This is a
// presentation truncation; full history can always be rescanned.
const topRecordCount = 10

type recordKey struct {
	typeID uuid.UUID
	kind   models.RecordKind
}

// PersonalRecords scans all sets across history and returns the best value
// per (exercise type, record kind), truncated to the top 10 by value.
func PersonalRecords(workouts []*models.Workout, catalog Catalog) []models.PersonalRecord {
	records := fullRecords(workouts, catalog)

	sort.Slice(records, func(i, j int) bool {
		if records[i].Value != records[j].Value {
			return records[i].Value > records[j].Value
		}
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.Before(records[j].Date)
		}
		if records[i].ExerciseName != records[j].ExerciseName {
			return records[i].ExerciseName < records[j].ExerciseName
		}
		return records[i].Kind < records[j].Kind
	})

	if len(records) > topRecordCount {
		records = records[:topRecordCount]
	}
	return records
}

// RecordsForExercise returns every record kind for a single exercise type,
// untruncated.
func RecordsForExercise(workouts []*models.Workout, catalog Catalog, typeID uuid.UUID) []models.PersonalRecord {
	var out []models.PersonalRecord
	for _, r := range fullRecords(workouts, catalog) {
		if r.ExerciseTypeID == typeID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// fullRecords computes the untruncated record set. The scan runs in
// chronological order so an equal later value never displaces the earliest
// occurrence.
func fullRecords(workouts []*models.Workout, catalog Catalog) []models.PersonalRecord {
	ordered := make([]*models.Workout, len(workouts))
	copy(ordered, workouts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	best := make(map[recordKey]models.PersonalRecord)
	for _, w := range ordered {
		for _, ex := range w.Exercises {
			for _, s := range ex.Sets {
				consider(best, ex.ExerciseTypeID, models.RecordMaxWeight, effectiveWeight(s), w, catalog)
				consider(best, ex.ExerciseTypeID, models.RecordMaxReps, float64(effectiveReps(s)), w, catalog)
				consider(best, ex.ExerciseTypeID, models.RecordMaxVolume, setVolume(s), w, catalog)
			}
		}
	}

	records := make([]models.PersonalRecord, 0, len(best))
	for _, r := range best {
		records = append(records, r)
	}
	return records
}

func consider(best map[recordKey]models.PersonalRecord, typeID uuid.UUID, kind models.RecordKind, value float64, w *models.Workout, catalog Catalog) {
	key := recordKey{typeID: typeID, kind: kind}
	if cur, ok := best[key]; ok && value <= cur.Value {
		return
	}

	name := typeID.String()
	if et, ok := catalog[typeID]; ok {
		name = et.Name
	}
	best[key] = models.PersonalRecord{
		ExerciseTypeID: typeID,
		ExerciseName:   name,
		Kind:           kind,
		Value:          value,
		Date:           recordDate(w),
		WorkoutID:      w.ID,
	}
}

func recordDate(w *models.Workout) time.Time {
	if w.CompletedAt != nil {
		return *w.CompletedAt
	}
	return w.Date
}
