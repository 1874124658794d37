package engine

import "github.com/rocketscienceinc/gridgame/internal/entity"

// History is a LIFO stack of move records.
type History struct {
	records []entity.MoveRecord
}

func (that *History) Push(record entity.MoveRecord) {
	that.records = append(that.records, record)
}

// Pop removes and returns the most recent record. ok is false when the history is empty.
func (that *History) Pop() (entity.MoveRecord, bool) {
	if len(that.records) == 0 {
		return entity.MoveRecord{}, false
	}

	last := that.records[len(that.records)-1]
	that.records[len(that.records)-1] = entity.MoveRecord{}
	that.records = that.records[:len(that.records)-1]

	return last, true
}

func (that *History) Len() int {
	return len(that.records)
}

func (that *History) Clear() {
	that.records = nil
}

// Records - returns copies of all records, oldest first.
func (that *History) Records() []entity.MoveRecord {
	records := make([]entity.MoveRecord, len(that.records))
	for i, record := range that.records {
		record.Board = record.Board.Clone()
		records[i] = record
	}

	return records
}
