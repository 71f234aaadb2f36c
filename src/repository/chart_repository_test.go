package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"github.com/stretchr/testify/assert"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"strings"
	"testing"
)

type recordedStatement struct {
	Query string
	Args  []driver.Value
}

// recordingConnector is a database/sql driver that keeps every executed statement in memory.
type recordingConnector struct {
	statements []recordedStatement
	execError  error
}

func (c *recordingConnector) Connect(ctx context.Context) (driver.Conn, error) {
	return &recordingConn{connector: c}, nil
}

func (c *recordingConnector) Driver() driver.Driver {
	return &recordingDriver{connector: c}
}

type recordingDriver struct {
	connector *recordingConnector
}

func (d *recordingDriver) Open(name string) (driver.Conn, error) {
	return &recordingConn{connector: d.connector}, nil
}

type recordingConn struct {
	connector *recordingConnector
}

func (c *recordingConn) Prepare(query string) (driver.Stmt, error) {
	return &recordingStmt{connector: c.connector, query: query}, nil
}

func (c *recordingConn) Close() error {
	return nil
}

func (c *recordingConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions are not supported")
}

type recordingStmt struct {
	connector *recordingConnector
	query     string
}

func (s *recordingStmt) Close() error {
	return nil
}

func (s *recordingStmt) NumInput() int {
	return -1
}

func (s *recordingStmt) Exec(args []driver.Value) (driver.Result, error) {
	s.connector.statements = append(s.connector.statements, recordedStatement{Query: s.query, Args: args})
	if s.connector.execError != nil {
		return nil, s.connector.execError
	}

	return driver.RowsAffected(1), nil
}

func (s *recordingStmt) Query(args []driver.Value) (driver.Rows, error) {
	return nil, errors.New("queries are not supported")
}

func TestSaveRenderInsertsRow(t *testing.T) {
	assertion := assert.New(t)

	connector := &recordingConnector{}
	db := sql.OpenDB(connector)
	defer db.Close()

	chartRepository := ChartRepository{DB: db}
	err := chartRepository.SaveRender(model.ChartRender{
		SessionUuid: "session-1",
		Kind:        model.ChartKindPriceComparison,
		FilePath:    "/tmp/price_comparison.png",
		Points:      30,
		RenderedAt:  "2023-11-14 22:13:20",
	})

	assertion.Nil(err)
	assertion.Len(connector.statements, 1)
	statement := connector.statements[0]
	assertion.Contains(statement.Query, "INSERT INTO chart_render SET")
	for _, column := range []string{"session_uuid = ?", "kind = ?", "file_path = ?", "points = ?", "rendered_at = ?"} {
		assertion.Contains(statement.Query, column)
	}
	assertion.Equal([]driver.Value{
		"session-1",
		"price_comparison",
		"/tmp/price_comparison.png",
		int64(30),
		"2023-11-14 22:13:20",
	}, statement.Args)
}

func TestSaveRenderReturnsDatabaseError(t *testing.T) {
	assertion := assert.New(t)

	connector := &recordingConnector{execError: errors.New("table chart_render doesn't exist")}
	db := sql.OpenDB(connector)
	defer db.Close()

	chartRepository := ChartRepository{DB: db}
	err := chartRepository.SaveRender(model.ChartRender{Kind: model.ChartKindMarketCapPie})

	assertion.NotNil(err)
	assertion.Equal("table chart_render doesn't exist", err.Error())
}

func TestMigrateCreatesTable(t *testing.T) {
	assertion := assert.New(t)

	connector := &recordingConnector{}
	db := sql.OpenDB(connector)
	defer db.Close()

	chartRepository := ChartRepository{DB: db}

	assertion.Nil(chartRepository.Migrate())
	assertion.Len(connector.statements, 1)
	assertion.True(strings.Contains(connector.statements[0].Query, "CREATE TABLE IF NOT EXISTS chart_render"))
	assertion.Len(connector.statements[0].Args, 0)
}
