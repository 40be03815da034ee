package store

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/timshannon/bolthold"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"

	"github.com/katalvlaran/lvmatch/labeled"
)

// ErrNotFound is returned when no snapshot has the requested name.
var ErrNotFound = errors.New("store: graph not found")

// ErrEmptyName is returned by Put for an empty name.
var ErrEmptyName = errors.New("store: empty graph name")

// DefaultTimeout bounds how long Open waits for the file lock.
const DefaultTimeout = 5 * time.Second

// Record is the persisted form of one snapshot.
type Record struct {
	ID        string `boltholdKey:"ID"`
	Name      string `boltholdIndex:"Name"`
	Labels    []int
	Children  [][]int
	Edges     []EdgeLabel
	CreatedAt int64 `boltholdIndex:"CreatedAt"`
}

// EdgeLabel is one labeled edge of a Record.
type EdgeLabel struct {
	From  int
	To    int
	Label int
}

// Entry summarizes a stored snapshot.
type Entry struct {
	ID        string
	Name      string
	Vertices  int
	Edges     int
	CreatedAt time.Time
}

// Option configures Open.
type Option func(*options)

type options struct {
	timeout time.Duration
}

// WithTimeout sets the file-lock timeout; non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// Store is an open catalog. It is safe for concurrent use; bbolt serializes
// writers.
type Store struct {
	db  *bolthold.Store
	now func() time.Time
}

// Open opens (creating if needed) the catalog file at path.
func Open(path string, opts ...Option) (*Store, error) {
	o := options{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	db, err := bolthold.Open(path, 0o644, &bolthold.Options{
		Encoder: msgpack.Marshal,
		Decoder: msgpack.Unmarshal,
		Options: &bbolt.Options{
			Timeout:      o.timeout,
			NoGrowSync:   bbolt.DefaultOptions.NoGrowSync,
			FreelistType: bbolt.DefaultOptions.FreelistType,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores g under name, replacing an existing snapshot with that name.
// It returns the snapshot id, which is kept across replacements.
func (s *Store) Put(name string, g *labeled.Graph[int]) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	rec := toRecord(g)
	rec.Name = name
	rec.CreatedAt = s.now().UnixNano()

	var existing Record
	err := s.db.FindOne(&existing, bolthold.Where("Name").Eq(name))
	switch {
	case err == nil:
		rec.ID = existing.ID
		if err = s.db.Update(rec.ID, rec); err != nil {
			return "", fmt.Errorf("store: put %q: %w", name, err)
		}
	case errors.Is(err, bolthold.ErrNotFound):
		rec.ID = uuid.NewString()
		if err = s.db.Insert(rec.ID, rec); err != nil {
			return "", fmt.Errorf("store: put %q: %w", name, err)
		}
	default:
		return "", fmt.Errorf("store: put %q: %w", name, err)
	}

	return rec.ID, nil
}

// Get loads the snapshot stored under name.
func (s *Store) Get(name string) (*labeled.Graph[int], error) {
	rec, err := s.find(name)
	if err != nil {
		return nil, err
	}
	g, err := fromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("store: get %q: %w", name, err)
	}

	return g, nil
}

// List returns all snapshots ordered by name.
func (s *Store) List() ([]Entry, error) {
	var recs []Record
	if err := s.db.Find(&recs, nil); err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	out := make([]Entry, 0, len(recs))
	for _, r := range recs {
		out = append(out, Entry{
			ID:        r.ID,
			Name:      r.Name,
			Vertices:  len(r.Labels),
			Edges:     len(r.Edges),
			CreatedAt: time.Unix(0, r.CreatedAt),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

// Delete removes the snapshot stored under name.
func (s *Store) Delete(name string) error {
	rec, err := s.find(name)
	if err != nil {
		return err
	}
	if err := s.db.Delete(rec.ID, Record{}); err != nil {
		return fmt.Errorf("store: delete %q: %w", name, err)
	}

	return nil
}

func (s *Store) find(name string) (Record, error) {
	var rec Record
	if err := s.db.FindOne(&rec, bolthold.Where("Name").Eq(name)); err != nil {
		if errors.Is(err, bolthold.ErrNotFound) {
			return Record{}, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return Record{}, fmt.Errorf("store: find %q: %w", name, err)
	}

	return rec, nil
}

func toRecord(g *labeled.Graph[int]) Record {
	rec := Record{
		Labels:   g.Labels(),
		Children: make([][]int, g.Size()),
	}
	for v := range rec.Children {
		rec.Children[v] = append([]int(nil), g.Children(v)...)
	}
	for _, e := range g.Edges() {
		rec.Edges = append(rec.Edges, EdgeLabel{From: e.From, To: e.To, Label: g.EdgeLabel(e.From, e.To)})
	}

	return rec
}

func fromRecord(rec Record) (*labeled.Graph[int], error) {
	elabels := make(map[labeled.Edge]int, len(rec.Edges))
	for _, e := range rec.Edges {
		elabels[labeled.Edge{From: e.From, To: e.To}] = e.Label
	}
	children := rec.Children
	if children == nil {
		children = make([][]int, len(rec.Labels))
	}

	return labeled.New(children, rec.Labels, elabels, labeled.WithName(rec.Name))
}
