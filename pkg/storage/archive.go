package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"pkg.jsn.cam/lpgen/internal/version"
	"pkg.jsn.cam/lpgen/pkg/lp"
)

var (
	metaBucket    = []byte("meta")
	batchesBucket = []byte("batches")
	infoBucket    = []byte("info")

	versionKey = []byte("version")
)

// BatchInfo describes an archived batch.
type BatchInfo struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Version   string    `json:"version"`
	Count     int       `json:"count"`
}

// Archive keeps generated batches in a bbolt database so they can be
// listed and exported later.
type Archive struct {
	db *bolt.DB
}

// OpenArchive opens or creates the archive at path, creating any missing
// buckets. Archives written by a different major version are refused.
func OpenArchive(path string) (*Archive, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}

	a := &Archive{db: db}
	if err := a.init(); err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("[ARCHIVE] Opened %s", path)

	return a, nil
}

func (a *Archive) init() error {
	return a.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{metaBucket, batchesBucket, infoBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}

		meta := tx.Bucket(metaBucket)
		stored := meta.Get(versionKey)
		if stored == nil {
			return meta.Put(versionKey, []byte(version.Current))
		}

		ok, err := version.IsCompatible(string(stored), version.Current)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrIncompatibleArchive, err)
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrIncompatibleArchive,
				version.CompatibilityError(string(stored), version.Current))
		}

		return nil
	})
}

// Put stores a batch under a new ID.
func (a *Archive) Put(problems []lp.Problem) (BatchInfo, error) {
	if problems == nil {
		problems = []lp.Problem{}
	}

	info := BatchInfo{
		ID:        uuid.New().String(),
		Count:     len(problems),
		CreatedAt: time.Now().UTC(),
		Version:   version.Current,
	}

	data, err := json.Marshal(problems)
	if err != nil {
		return BatchInfo{}, fmt.Errorf("failed to encode batch: %w", err)
	}
	infoData, err := json.Marshal(info)
	if err != nil {
		return BatchInfo{}, fmt.Errorf("failed to encode batch info: %w", err)
	}

	err = a.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(batchesBucket).Put([]byte(info.ID), data); err != nil {
			return err
		}
		return tx.Bucket(infoBucket).Put([]byte(info.ID), infoData)
	})
	if err != nil {
		return BatchInfo{}, fmt.Errorf("failed to store batch %s: %w", info.ID, err)
	}

	return info, nil
}

// Get returns the problems of the batch with the given ID.
func (a *Archive) Get(id string) ([]lp.Problem, error) {
	var problems []lp.Problem
	err := a.db.View(func(tx *bolt.Tx) error {
		// the value is only valid inside the transaction, decode here
		v := tx.Bucket(batchesBucket).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrBatchNotFound, id)
		}
		if err := json.Unmarshal(v, &problems); err != nil {
			return fmt.Errorf("failed to decode batch %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if problems == nil {
		problems = []lp.Problem{}
	}
	return problems, nil
}

// List returns every archived batch, oldest first.
func (a *Archive) List() ([]BatchInfo, error) {
	var infos []BatchInfo
	err := a.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(infoBucket).ForEach(func(k, v []byte) error {
			var info BatchInfo
			if err := json.Unmarshal(v, &info); err != nil {
				log.Printf("[ARCHIVE] Warning: Failed to decode batch info %s: %v", k, err)
				return nil
			}
			infos = append(infos, info)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(infos, func(x, y BatchInfo) int {
		if c := x.CreatedAt.Compare(y.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(x.ID, y.ID)
	})

	return infos, nil
}

// Close closes the database.
func (a *Archive) Close() error {
	return a.db.Close()
}
