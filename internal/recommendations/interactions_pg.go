package recommendations

import (
	"context"
	"database/sql"
)

type PGInteractionsRepo struct {
	DB *sql.DB
}

func (r *PGInteractionsRepo) Insert(ctx context.Context, interaction Interaction) error {
	const query = `
INSERT INTO recommendation_interactions (id, user_id, recommendation_id, action, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query,
		interaction.ID,
		interaction.UserID,
		interaction.RecommendationID,
		interaction.Action,
		interaction.CreatedAt,
	)
	return err
}
