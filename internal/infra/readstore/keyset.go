package readstore

import (
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/pgconv"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// keysetParams maps a cursor position to the nullable after_* query arguments.
// A nil keyset selects the first page.
func keysetParams(after *queries.Keyset) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.UUID{}
	}
	return pgconv.TimeToPgtype(after.CreatedAt), pgconv.UUIDToPgtype(after.ID)
}
