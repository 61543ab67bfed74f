// Package prefs persists the handful of client-side flags the product keeps
// outside the store: the auth flag, the signed-in operator, the UI theme and
// the public site's demo booking list. Everything else is memory-only.
package prefs

import (
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

const (
	KeyAdminAuth  = "adminAuth"
	KeyAdminUser  = "adminUser"
	KeyTheme      = "theme"
	KeyMyBookings = "my_bookings"
)

var bucketName = []byte("prefs")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Prefs struct {
	db *bolt.DB
}

// Open creates or opens the prefs database under the given directory.
func Open(dir string) (*Prefs, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create prefs dir")
	}
	db, err := bolt.Open(filepath.Join(dir, "prefs.db"), 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open prefs db")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init prefs bucket")
	}
	return &Prefs{db: db}, nil
}

func (p *Prefs) Close() error {
	return p.db.Close()
}

func (p *Prefs) SetString(key, value string) error {
	return p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), []byte(value))
	})
}

// GetString returns the stored value, or empty when the key is unset.
func (p *Prefs) GetString(key string) string {
	var out string
	_ = p.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			out = string(v)
		}
		return nil
	})
	return out
}

func (p *Prefs) Delete(key string) error {
	return p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
}

// SetJSON stores any value serialized as JSON under the key.
func (p *Prefs) SetJSON(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "encode pref")
	}
	return p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), data)
	})
}

// GetJSON decodes the stored value into target; unset keys leave the target
// untouched and return false.
func (p *Prefs) GetJSON(key string, target interface{}) (bool, error) {
	var data []byte
	_ = p.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			data = append(data, v...)
		}
		return nil
	})
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return false, errors.Wrap(err, "decode pref")
	}
	return true, nil
}

// AppendMyBooking pushes a booking onto the public site's demo list.
func (p *Prefs) AppendMyBooking(b domain.Booking) error {
	list, err := p.MyBookings()
	if err != nil {
		return err
	}
	return p.SetJSON(KeyMyBookings, append(list, b))
}

func (p *Prefs) MyBookings() ([]domain.Booking, error) {
	var list []domain.Booking
	if _, err := p.GetJSON(KeyMyBookings, &list); err != nil {
		return nil, err
	}
	return list, nil
}
