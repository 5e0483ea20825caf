package lob

import "github.com/obsystems/lob/pkg/decimal"

// shouldAdmit applies the book's sequencing rule: an event strictly older
// than the book's current timestamp is always dropped (it cannot reflect
// the true state of the book any longer). Otherwise the event is admitted
// if it carries no sequence number, the book has not yet observed one
// either, or the event's sequence number is not behind the book's
// watermark. A sequence number equal to the current watermark is admitted
// (replays of the same sequence are treated as idempotent, not stale).
func shouldAdmit[V decimal.Value[V]](currentTimestamp int64, currentSequenceID uint64, e Event[V]) bool {
	if e.Timestamp < currentTimestamp {
		return false
	}
	if e.SequenceID == 0 || currentSequenceID == 0 || e.SequenceID >= currentSequenceID {
		return true
	}
	return false
}
