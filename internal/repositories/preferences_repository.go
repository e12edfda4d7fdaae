package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"lionlease/internal/models"
)

type PreferencesRepository struct {
	DB *sql.DB
}

func (r *PreferencesRepository) GetByUserID(ctx context.Context, userID string) (models.UserPreferences, error) {
	query := `
		SELECT user_id, min_budget, max_budget, bedrooms, bathrooms, max_distance,
		       lion_scores, max_complaints, only_no_fee, only_featured, areas, sort_option, updated_at
		FROM user_preferences
		WHERE user_id = ?
	`

	var (
		prefs      models.UserPreferences
		minBudget  sql.NullFloat64
		maxBudget  sql.NullFloat64
		bedrooms   sql.NullString
		bathrooms  sql.NullString
		maxDist    sql.NullFloat64
		scoresJSON sql.NullString
		maxCompl   sql.NullInt64
		onlyNoFee  sql.NullBool
		onlyFeat   sql.NullBool
		areasJSON  sql.NullString
		sortOption sql.NullString
	)

	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&prefs.UserID, &minBudget, &maxBudget, &bedrooms, &bathrooms, &maxDist,
		&scoresJSON, &maxCompl, &onlyNoFee, &onlyFeat, &areasJSON, &sortOption, &prefs.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.UserPreferences{}, models.ErrPreferencesNotFound
	}
	if err != nil {
		return models.UserPreferences{}, fmt.Errorf("get preferences: %w", err)
	}

	if minBudget.Valid {
		prefs.MinBudget = &minBudget.Float64
	}
	if maxBudget.Valid {
		prefs.MaxBudget = &maxBudget.Float64
	}
	if bedrooms.Valid {
		prefs.Bedrooms = &bedrooms.String
	}
	if bathrooms.Valid {
		prefs.Bathrooms = &bathrooms.String
	}
	if maxDist.Valid {
		prefs.MaxDistance = &maxDist.Float64
	}
	if maxCompl.Valid {
		v := int(maxCompl.Int64)
		prefs.MaxComplaints = &v
	}
	if onlyNoFee.Valid {
		prefs.OnlyNoFee = &onlyNoFee.Bool
	}
	if onlyFeat.Valid {
		prefs.OnlyFeatured = &onlyFeat.Bool
	}
	if sortOption.Valid {
		prefs.SortOption = &sortOption.String
	}
	prefs.LionScores = decodeStringList(scoresJSON)
	prefs.Areas = decodeStringList(areasJSON)

	return prefs, nil
}

// Upsert writes only the fields the client actually sent; absent fields
// keep their stored values.
func (r *PreferencesRepository) Upsert(ctx context.Context, prefs models.UserPreferences) error {
	columns := []string{"user_id"}
	values := []interface{}{prefs.UserID}

	addColumn := func(name string, value interface{}) {
		columns = append(columns, name)
		values = append(values, value)
	}

	if prefs.MinBudget != nil {
		addColumn("min_budget", *prefs.MinBudget)
	}
	if prefs.MaxBudget != nil {
		addColumn("max_budget", *prefs.MaxBudget)
	}
	if prefs.Bedrooms != nil {
		addColumn("bedrooms", *prefs.Bedrooms)
	}
	if prefs.Bathrooms != nil {
		addColumn("bathrooms", *prefs.Bathrooms)
	}
	if prefs.MaxDistance != nil {
		addColumn("max_distance", *prefs.MaxDistance)
	}
	if prefs.LionScores != nil {
		addColumn("lion_scores", encodeStringList(prefs.LionScores))
	}
	if prefs.MaxComplaints != nil {
		addColumn("max_complaints", *prefs.MaxComplaints)
	}
	if prefs.OnlyNoFee != nil {
		addColumn("only_no_fee", *prefs.OnlyNoFee)
	}
	if prefs.OnlyFeatured != nil {
		addColumn("only_featured", *prefs.OnlyFeatured)
	}
	if prefs.Areas != nil {
		addColumn("areas", encodeStringList(prefs.Areas))
	}
	if prefs.SortOption != nil {
		addColumn("sort_option", *prefs.SortOption)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",")

	var updates []string
	for _, col := range columns[1:] {
		updates = append(updates, fmt.Sprintf("%s = VALUES(%s)", col, col))
	}
	updates = append(updates, "updated_at = NOW()")

	query := fmt.Sprintf(
		`INSERT INTO user_preferences (%s, updated_at) VALUES (%s, NOW())
		 ON DUPLICATE KEY UPDATE %s`,
		strings.Join(columns, ", "), placeholders, strings.Join(updates, ", "),
	)

	if _, err := r.DB.ExecContext(ctx, query, values...); err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	return nil
}

func (r *PreferencesRepository) Delete(ctx context.Context, userID string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM user_preferences WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("delete preferences: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrPreferencesNotFound
	}
	return nil
}

func encodeStringList(values []string) string {
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeStringList(raw sql.NullString) []string {
	if !raw.Valid || raw.String == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw.String), &values); err != nil {
		return nil
	}
	return values
}
