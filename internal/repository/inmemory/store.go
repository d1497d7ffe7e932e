// Package inmemory keeps every charity entity in process memory. It serves the
// HTTP tests in place of postgres and mirrors the constraints the postgres
// schema enforces.
package inmemory

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"
	"time"

	"charity-app-go/internal/domain/common"
	"charity-app-go/internal/domain/donation"
	"charity-app-go/internal/domain/donor"
	"charity-app-go/internal/domain/family"
	"charity-app-go/internal/domain/health"
	"charity-app-go/internal/domain/needs"
	"gorm.io/gorm/schema"
)

type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex
	data tables
	now  func() time.Time
}

type tables struct {
	seq       uint
	families  map[uint]family.Family
	members   map[uint]family.FamilyMember
	health    map[uint]health.HealthHistory
	needs     map[uint]needs.MemberNeed
	donors    map[uint]donor.Donor
	donations map[uint]donation.Donation
	records   map[uint]donation.Record
}

func NewStore() *Store {
	return &Store{
		data: tables{
			families:  map[uint]family.Family{},
			members:   map[uint]family.FamilyMember{},
			health:    map[uint]health.HealthHistory{},
			needs:     map[uint]needs.MemberNeed{},
			donors:    map[uint]donor.Donor{},
			donations: map[uint]donation.Donation{},
			records:   map[uint]donation.Record{},
		},
		now: time.Now,
	}
}

func (t tables) clone() tables {
	return tables{
		seq:       t.seq,
		families:  maps.Clone(t.families),
		members:   maps.Clone(t.members),
		health:    maps.Clone(t.health),
		needs:     maps.Clone(t.needs),
		donors:    maps.Clone(t.donors),
		donations: maps.Clone(t.donations),
		records:   maps.Clone(t.records),
	}
}

// transaction runs fn with the other transactions held off and restores the
// previous state when fn fails.
func (s *Store) transaction(fn func() error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.data.clone()
	s.mu.Unlock()

	if err := fn(); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) nextID() uint {
	s.data.seq++
	return s.data.seq
}

func sortedByID[T any](rows map[uint]T, keep func(T) bool) []T {
	ids := make([]uint, 0, len(rows))
	for id, row := range rows {
		if keep == nil || keep(row) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, rows[id])
	}
	return out
}

var naming = schema.NamingStrategy{}

// applyChanges writes column-keyed changes onto a model the way gorm maps
// them: each key is matched against the snake_case name of a struct field.
func applyChanges(dst any, changes common.Changes, now time.Time) error {
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()

	columns := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		columns[naming.ColumnName("", t.Field(i).Name)] = i
	}

	for column, value := range changes {
		idx, ok := columns[column]
		if !ok {
			return fmt.Errorf("unknown column %q on %s", column, t.Name())
		}
		if err := assign(v.Field(idx), value); err != nil {
			return fmt.Errorf("column %q: %w", column, err)
		}
	}
	if idx, ok := columns["updated_at"]; ok {
		v.Field(idx).Set(reflect.ValueOf(now))
	}
	return nil
}

func assign(field reflect.Value, value any) error {
	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}

	rv := reflect.ValueOf(value)
	switch {
	case rv.Type().AssignableTo(field.Type()):
		field.Set(rv)
	case field.Kind() == reflect.Pointer && rv.Type().AssignableTo(field.Type().Elem()):
		ptr := reflect.New(field.Type().Elem())
		ptr.Elem().Set(rv)
		field.Set(ptr)
	case rv.Type().ConvertibleTo(field.Type()):
		field.Set(rv.Convert(field.Type()))
	default:
		return fmt.Errorf("cannot assign %s to %s", rv.Type(), field.Type())
	}
	return nil
}
