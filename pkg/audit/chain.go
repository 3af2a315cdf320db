package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/vantagehq/vantage/pkg/model"
)

// GenesisHash is the previous_hash of the first entry in an org's chain.
const GenesisHash = ""

// EntryHash computes the chain hash for a record appended after prevHash.
// The canonical form is a pipe-joined field list; Details are serialized
// with encoding/json, which sorts map keys, so the form is deterministic.
// The timestamp is truncated to microseconds, the precision timestamptz
// actually stores, so a row hashes the same before and after a round trip
// through Postgres.
func EntryHash(prevHash string, rec Record, createdAt time.Time) string {
	details := rec.Details
	if details == nil {
		details = map[string]any{}
	}
	detailsJSON, _ := json.Marshal(details)

	canonical := strings.Join([]string{
		rec.OrgID,
		rec.ActorID,
		rec.Action,
		rec.ResourceType,
		rec.ResourceID,
		rec.ClientIP,
		string(detailsJSON),
		createdAt.UTC().Truncate(time.Microsecond).Format(time.RFC3339Nano),
	}, "|")

	sum := sha256.Sum256([]byte(prevHash + "\n" + canonical))
	return hex.EncodeToString(sum[:])
}

// RowHash recomputes the hash of a stored audit row from its own fields
// and its recorded previous_hash.
func RowHash(row model.AuditLog) string {
	var details map[string]any
	if row.Details != "" {
		_ = json.Unmarshal([]byte(row.Details), &details)
	}
	actorID := ""
	if row.ActorID != nil {
		actorID = *row.ActorID
	}
	return EntryHash(row.PreviousHash, Record{
		OrgID:        row.OrgID,
		ActorID:      actorID,
		Action:       row.Action,
		ResourceType: row.ResourceType,
		ResourceID:   row.ResourceID,
		ClientIP:     row.ClientIP,
		Details:      details,
	}, row.CreatedAt)
}

// VerifyResult is the outcome of walking an org's audit chain.
type VerifyResult struct {
	Valid    bool   `json:"valid"`
	Checked  int    `json:"checked"`
	BrokenAt *int64 `json:"broken_at,omitempty"` // id of the first bad row
}

// VerifyChain walks rows (ordered by id ascending) and recomputes every
// link. A row is bad when its previous_hash does not match the prior
// row's hash, or its stored hash does not match the recomputation.
func VerifyChain(rows []model.AuditLog) VerifyResult {
	result := VerifyResult{Valid: true}
	prev := GenesisHash

	for i := range rows {
		row := rows[i]
		if row.PreviousHash != prev || RowHash(row) != row.Hash {
			id := row.ID
			result.Valid = false
			result.BrokenAt = &id
			return result
		}
		prev = row.Hash
		result.Checked++
	}
	return result
}
