package eventlog

import (
	"context"
	"fmt"
)

// Mismatch kinds reported by Verify.
const (
	MismatchPrevHash  = "prev_hash_mismatch"
	MismatchMissing   = "event_hash_missing"
	MismatchEventHash = "event_hash_mismatch"
)

// Mismatch pinpoints the first chain inconsistency in a stream.
type Mismatch struct {
	StreamSeq int64  `json:"stream_seq"`
	EventID   string `json:"event_id"`
	Kind      string `json:"kind"`
}

// VerifyResult is the audit verifier's report. Checked counts events whose
// chain links held; verification stops at the first mismatch.
type VerifyResult struct {
	Checked       int       `json:"checked"`
	Valid         bool      `json:"valid"`
	FirstMismatch *Mismatch `json:"first_mismatch"`
	LastEventHash string    `json:"last_event_hash,omitempty"`
}

// verifyBatch bounds each page read during verification.
const verifyBatch = 500

// Verify replays a stream's events in sequence order, recomputing each
// chain hash from the stored row alone. With fromSeq > 0 verification
// resumes mid-stream, trusting the first row's stored prev hash as the
// seed. The log is never mutated; a failed verification is a read-only
// report.
func (s *Store) Verify(ctx context.Context, streamType, streamID string, fromSeq int64, limit int) (*VerifyResult, error) {
	result := &VerifyResult{Valid: true}

	expectedPrev := ""
	cursor := fromSeq
	seeded := fromSeq == 0
	remaining := limit

	for remaining > 0 {
		batch := verifyBatch
		if remaining < batch {
			batch = remaining
		}
		envelopes, err := s.Range(ctx, streamType, streamID, cursor, batch)
		if err != nil {
			return nil, err
		}
		if len(envelopes) == 0 {
			break
		}

		for _, env := range envelopes {
			if !seeded {
				expectedPrev = env.PrevEventHash
				seeded = true
			}
			if env.PrevEventHash != expectedPrev {
				result.Valid = false
				result.FirstMismatch = &Mismatch{
					StreamSeq: env.StreamSeq,
					EventID:   env.EventID,
					Kind:      MismatchPrevHash,
				}
				return result, nil
			}

			if env.EventHash == "" {
				result.Valid = false
				result.FirstMismatch = &Mismatch{
					StreamSeq: env.StreamSeq,
					EventID:   env.EventID,
					Kind:      MismatchMissing,
				}
				return result, nil
			}

			recomputed, err := env.ComputeHash()
			if err != nil {
				return nil, fmt.Errorf("failed to recompute hash at seq %d: %w", env.StreamSeq, err)
			}
			if recomputed != env.EventHash {
				result.Valid = false
				result.FirstMismatch = &Mismatch{
					StreamSeq: env.StreamSeq,
					EventID:   env.EventID,
					Kind:      MismatchEventHash,
				}
				return result, nil
			}

			result.Checked++
			result.LastEventHash = env.EventHash
			expectedPrev = env.EventHash
			cursor = env.StreamSeq
		}
		remaining -= len(envelopes)
	}

	return result, nil
}
