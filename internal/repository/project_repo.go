package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"podcastwerkstatt/internal/database"
	"podcastwerkstatt/internal/models"
)

// ProjectRepository persists one project record per team session. The
// record column holds the full project value as JSON; the schema stays a
// plain key-value store so the engine alone owns the project shape.
type ProjectRepository struct {
	db database.DBTX
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db database.DBTX) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Load retrieves the project for a session. A missing or malformed record
// yields (nil, nil): the caller sees "no project" rather than an error.
func (r *ProjectRepository) Load(sessionID string) (*models.Project, error) {
	query := "SELECT record FROM projects WHERE session_id = ?"
	var record []byte
	err := r.db.QueryRow(query, sessionID).Scan(&record)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	project, err := models.ParseProject(record)
	if err != nil {
		log.Printf("Discarding malformed project record for session %s: %v", sessionID, err)
		return nil, nil
	}
	return project, nil
}

// Save upserts the project record for a session.
func (r *ProjectRepository) Save(sessionID string, project models.Project) error {
	record, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}

	query := "UPDATE projects SET record = ?, updated_at = CURRENT_TIMESTAMP WHERE session_id = ?"
	result, err := r.db.Exec(query, record, sessionID)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows > 0 {
		return nil
	}

	query = "INSERT INTO projects (session_id, record) VALUES (?, ?)"
	if _, err := r.db.Exec(query, sessionID, record); err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}

// Clear removes the project record for a session.
func (r *ProjectRepository) Clear(sessionID string) error {
	query := "DELETE FROM projects WHERE session_id = ?"
	if _, err := r.db.Exec(query, sessionID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// All returns every stored project keyed by session, skipping records that
// no longer parse. Used by the backup command.
func (r *ProjectRepository) All() (map[string]models.Project, error) {
	query := "SELECT session_id, record FROM projects ORDER BY session_id"
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := make(map[string]models.Project)
	for rows.Next() {
		var sessionID string
		var record []byte
		if err := rows.Scan(&sessionID, &record); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		project, err := models.ParseProject(record)
		if err != nil {
			log.Printf("Skipping malformed project record for session %s", sessionID)
			continue
		}
		projects[sessionID] = *project
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}
	return projects, nil
}
