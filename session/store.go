package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"itg.uk/invoicegen/model"
	"itg.uk/invoicegen/sheet"
)

// MemoryDSN keeps all session state inside the process; nothing survives a
// restart.
const MemoryDSN = "file::memory:?cache=shared"

var ErrNotFound = errors.New("session not found")

// Record is the persisted form of a session. The tables are stored as JSON
// columns: they are written and read whole, one session at a time, so
// relational modelling of the rows buys nothing here.
type Record struct {
	ID            string    `gorm:"primaryKey;column:id"`
	EventName     string    `gorm:"column:event_name"`
	TemplateJSON  string    `gorm:"column:template_json;type:text"`
	StudioJSON    string    `gorm:"column:studio_json;type:text"`
	PrintJSON     string    `gorm:"column:print_json;type:text"`
	HoursJSON     string    `gorm:"column:hours_json;type:text"`
	GeneratedJSON string    `gorm:"column:generated_json;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (Record) TableName() string {
	return "sessions"
}

// State is one user's workflow state between pipeline stages.
type State struct {
	ID        string                  `json:"id"`
	EventName string                  `json:"eventName"`
	Template  *sheet.Template         `json:"template,omitempty"`
	Studio    []model.StudioJob       `json:"studio,omitempty"`
	Print     []model.LineItem        `json:"print,omitempty"`
	Hours     []model.JobHours        `json:"hours,omitempty"`
	Generated *sheet.GeneratedInvoice `json:"generated,omitempty"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

// Store keeps session state in a gorm-managed sqlite database. Writes are
// serialized: the UI layer funnels user actions one at a time, and the
// mutex keeps that guarantee even if a caller misbehaves.
type Store struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewStore(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %w", err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate session db: %w", err)
	}
	return &Store{db: db}, nil
}

// Create starts a new empty session.
func (s *Store) Create() (*State, error) {
	state := &State{ID: uuid.NewString()}
	if err := s.Save(state); err != nil {
		return nil, err
	}
	return state, nil
}

// Get loads a session by ID.
func (s *Store) Get(id string) (*State, error) {
	var rec Record
	err := s.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return recordToState(&rec)
}

// Save upserts the full session state.
func (s *Store) Save(state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := stateToRecord(state)
	if err != nil {
		return err
	}
	return s.db.Save(rec).Error
}

// Update loads, mutates and saves a session under the store's write lock.
func (s *Store) Update(id string, fn func(*State) error) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec Record
	err := s.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	state, err := recordToState(&rec)
	if err != nil {
		return nil, err
	}
	if err := fn(state); err != nil {
		return nil, err
	}

	updated, err := stateToRecord(state)
	if err != nil {
		return nil, err
	}
	updated.CreatedAt = rec.CreatedAt
	if err := s.db.Save(updated).Error; err != nil {
		return nil, err
	}
	return state, nil
}

func stateToRecord(state *State) (*Record, error) {
	rec := &Record{
		ID:        state.ID,
		EventName: state.EventName,
		CreatedAt: state.CreatedAt,
	}

	var err error
	if rec.TemplateJSON, err = marshalField(state.Template); err != nil {
		return nil, err
	}
	if rec.StudioJSON, err = marshalField(state.Studio); err != nil {
		return nil, err
	}
	if rec.PrintJSON, err = marshalField(state.Print); err != nil {
		return nil, err
	}
	if rec.HoursJSON, err = marshalField(state.Hours); err != nil {
		return nil, err
	}
	if rec.GeneratedJSON, err = marshalField(state.Generated); err != nil {
		return nil, err
	}
	return rec, nil
}

func recordToState(rec *Record) (*State, error) {
	state := &State{
		ID:        rec.ID,
		EventName: rec.EventName,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}

	if err := unmarshalField(rec.TemplateJSON, &state.Template); err != nil {
		return nil, err
	}
	if err := unmarshalField(rec.StudioJSON, &state.Studio); err != nil {
		return nil, err
	}
	if err := unmarshalField(rec.PrintJSON, &state.Print); err != nil {
		return nil, err
	}
	if err := unmarshalField(rec.HoursJSON, &state.Hours); err != nil {
		return nil, err
	}
	if err := unmarshalField(rec.GeneratedJSON, &state.Generated); err != nil {
		return nil, err
	}
	return state, nil
}

func marshalField(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session field: %w", err)
	}
	return string(b), nil
}

func unmarshalField(data string, target interface{}) error {
	if data == "" || data == "null" {
		return nil
	}
	if err := json.Unmarshal([]byte(data), target); err != nil {
		return fmt.Errorf("failed to unmarshal session field: %w", err)
	}
	return nil
}
