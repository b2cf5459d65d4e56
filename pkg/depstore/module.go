package depstore

import (
	"bytes"
	"errors"

	bolt "go.etcd.io/bbolt"
	"src.fenn.dev/pkg/ir"
)

const (
	bucketDeps   = "deps"
	bucketLocals = "locals"
)

// ErrNoSuchModule is returned when a queried module has no record.
var ErrNoSuchModule = errors.New("no such module")

func init() {
	initDB["initialize module dependency table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketDeps))
		return err
	}
	initDB["initialize module locality table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketLocals))
		return err
	}
}

// PutModule records the dependency and locality sets of a module,
// overwriting any existing record.
func (s *Store) PutModule(module string, deps, locals ir.NameSet) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket([]byte(bucketDeps)).Put([]byte(module), marshalNames(deps)); err != nil {
			return err
		}
		return tx.Bucket([]byte(bucketLocals)).Put([]byte(module), marshalNames(locals))
	})
}

// Deps returns the recorded dependency set of a module.
func (s *Store) Deps(module string) (ir.NameSet, error) {
	return s.names(bucketDeps, module)
}

// Locals returns the recorded locality set of a module.
func (s *Store) Locals(module string) (ir.NameSet, error) {
	return s.names(bucketLocals, module)
}

func (s *Store) names(bucket, module string) (ir.NameSet, error) {
	var names ir.NameSet
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucket)).Get([]byte(module))
		if v == nil {
			return ErrNoSuchModule
		}
		names = unmarshalNames(v)
		return nil
	})
	return names, err
}

// Modules returns the names of all recorded modules, in key order.
func (s *Store) Modules() ([]string, error) {
	var modules []string
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketDeps)).Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			modules = append(modules, string(k))
		}
		return nil
	})
	return modules, err
}

// Names are stored NUL-separated; names never contain NUL.

func marshalNames(names ir.NameSet) []byte {
	var b bytes.Buffer
	for i, n := range names.Names() {
		if i > 0 {
			b.WriteByte(0)
		}
		b.WriteString(string(n))
	}
	return b.Bytes()
}

func unmarshalNames(data []byte) ir.NameSet {
	if len(data) == 0 {
		return ir.NameSet{}
	}
	var names []ir.Name
	for _, part := range bytes.Split(data, []byte{0}) {
		names = append(names, ir.Name(part))
	}
	return ir.MakeNameSet(names...)
}
