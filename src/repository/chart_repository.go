package repository

import (
	"database/sql"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"log"
)

type ChartStorageInterface interface {
	SaveRender(render model.ChartRender) error
}

type ChartRepository struct {
	DB *sql.DB
}

func (c *ChartRepository) SaveRender(render model.ChartRender) error {
	_, err := c.DB.Exec(`
		INSERT INTO chart_render SET
		    session_uuid = ?,
		    kind = ?,
		    file_path = ?,
		    points = ?,
		    rendered_at = ?
	`,
		render.SessionUuid,
		render.Kind,
		render.FilePath,
		render.Points,
		render.RenderedAt,
	)

	if err != nil {
		log.Printf("[%s] SaveRender: %s", render.Kind, err.Error())
		return err
	}

	return nil
}

func (c *ChartRepository) Migrate() error {
	_, err := c.DB.Exec(`
		CREATE TABLE IF NOT EXISTS chart_render (
		    id BIGINT AUTO_INCREMENT PRIMARY KEY,
		    session_uuid VARCHAR(36) NOT NULL,
		    kind VARCHAR(32) NOT NULL,
		    file_path VARCHAR(255) NOT NULL,
		    points INT NOT NULL,
		    rendered_at DATETIME NOT NULL,
		    INDEX idx_chart_render_session (session_uuid)
		)
	`)

	return err
}
