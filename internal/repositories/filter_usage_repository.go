package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"lionlease/internal/models"
)

type FilterUsageRepository struct {
	DB *sql.DB
}

func (r *FilterUsageRepository) Record(ctx context.Context, usage models.SmartFilterUsage) (models.SmartFilterUsage, error) {
	result, err := r.DB.ExecContext(ctx, `
		INSERT INTO smart_filter_usage (user_id, feature, action, context, created_at)
		VALUES (?, ?, ?, ?, NOW())`,
		usage.UserID, usage.Feature, usage.Action, usage.Context)
	if err != nil {
		return models.SmartFilterUsage{}, fmt.Errorf("record filter usage: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.SmartFilterUsage{}, err
	}

	var saved models.SmartFilterUsage
	var ctxVal sql.NullString
	err = r.DB.QueryRowContext(ctx,
		`SELECT id, user_id, feature, action, context, created_at FROM smart_filter_usage WHERE id = ?`,
		id).Scan(&saved.ID, &saved.UserID, &saved.Feature, &saved.Action, &ctxVal, &saved.CreatedAt)
	if err != nil {
		return models.SmartFilterUsage{}, fmt.Errorf("read filter usage row: %w", err)
	}
	if ctxVal.Valid {
		saved.Context = &ctxVal.String
	}
	return saved, nil
}

// TopFeatures counts "added" events per feature over the trailing
// window, most used first.
func (r *FilterUsageRepository) TopFeatures(ctx context.Context, days, limit int) ([]models.FeatureCount, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT feature, COUNT(*) AS cnt
		  FROM smart_filter_usage
		 WHERE action = ? AND created_at >= NOW() - INTERVAL ? DAY
		 GROUP BY feature
		 ORDER BY cnt DESC
		 LIMIT ?`,
		models.UsageActionAdded, days, limit)
	if err != nil {
		return nil, fmt.Errorf("top features: %w", err)
	}
	defer rows.Close()

	var top []models.FeatureCount
	for rows.Next() {
		var fc models.FeatureCount
		if err := rows.Scan(&fc.Feature, &fc.Count); err != nil {
			return nil, err
		}
		top = append(top, fc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top features rows error: %w", err)
	}
	return top, nil
}

func (r *FilterUsageRepository) ActionStats(ctx context.Context, days int) ([]models.ActionCount, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT action, COUNT(*) AS cnt
		  FROM smart_filter_usage
		 WHERE created_at >= NOW() - INTERVAL ? DAY
		 GROUP BY action
		 ORDER BY cnt DESC`,
		days)
	if err != nil {
		return nil, fmt.Errorf("action stats: %w", err)
	}
	defer rows.Close()

	var stats []models.ActionCount
	for rows.Next() {
		var ac models.ActionCount
		if err := rows.Scan(&ac.Action, &ac.Count); err != nil {
			return nil, err
		}
		stats = append(stats, ac)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("action stats rows error: %w", err)
	}
	return stats, nil
}

func (r *FilterUsageRepository) RecentSearches(ctx context.Context, days, limit int) ([]models.SmartFilterUsage, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, feature, action, context, created_at
		  FROM smart_filter_usage
		 WHERE action = ? AND created_at >= NOW() - INTERVAL ? DAY
		 ORDER BY created_at DESC
		 LIMIT ?`,
		models.UsageActionSearched, days, limit)
	if err != nil {
		return nil, fmt.Errorf("recent searches: %w", err)
	}
	defer rows.Close()

	var searches []models.SmartFilterUsage
	for rows.Next() {
		var u models.SmartFilterUsage
		var ctxVal sql.NullString
		if err := rows.Scan(&u.ID, &u.UserID, &u.Feature, &u.Action, &ctxVal, &u.CreatedAt); err != nil {
			return nil, err
		}
		if ctxVal.Valid {
			u.Context = &ctxVal.String
		}
		searches = append(searches, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent searches rows error: %w", err)
	}
	return searches, nil
}

func (r *FilterUsageRepository) DistinctUsers(ctx context.Context, days int) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT DISTINCT user_id FROM smart_filter_usage WHERE created_at >= NOW() - INTERVAL ? DAY`,
		days)
	if err != nil {
		return nil, fmt.Errorf("distinct usage users: %w", err)
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		users = append(users, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("distinct users rows error: %w", err)
	}
	return users, nil
}

func (r *FilterUsageRepository) UserHistory(ctx context.Context, userID string, limit int) ([]models.SmartFilterUsage, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, feature, action, context, created_at
		  FROM smart_filter_usage
		 WHERE user_id = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("user usage history: %w", err)
	}
	defer rows.Close()

	var history []models.SmartFilterUsage
	for rows.Next() {
		var u models.SmartFilterUsage
		var ctxVal sql.NullString
		if err := rows.Scan(&u.ID, &u.UserID, &u.Feature, &u.Action, &ctxVal, &u.CreatedAt); err != nil {
			return nil, err
		}
		if ctxVal.Valid {
			u.Context = &ctxVal.String
		}
		history = append(history, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user usage history rows error: %w", err)
	}
	return history, nil
}
