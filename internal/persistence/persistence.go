package persistence

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/markusressel/thelio2go/internal/ui"
	bolt "go.etcd.io/bbolt"
)

const (
	BucketState   = "state"
	BucketDevices = "devices"

	keyLastState       = "last"
	keyDetectedDevices = "detected"
)

// ErrNoData indicates that nothing has been stored under the requested key yet.
var ErrNoData = errors.New("no data stored")

// State is the last actuation applied by the control loop. It is stored
// on every duty change so the status command can report what the fans are
// currently doing without talking to the hardware.
type State struct {
	Duty        uint16    `json:"duty"`
	Temperature float64   `json:"temperature"`
	Curve       string    `json:"curve"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DeviceInfo is a snapshot entry of one board found during detection.
type DeviceInfo struct {
	Port         string `json:"port"`
	SerialNumber string `json:"serialNumber"`
}

type Persistence interface {
	Init() error

	SaveState(state State) error
	LoadState() (State, error)

	SaveDetectedDevices(devices []DeviceInfo) error
	LoadDetectedDevices() ([]DeviceInfo, error)
}

type persistence struct {
	dbPath string
}

func NewPersistence(dbPath string) Persistence {
	return &persistence{
		dbPath: dbPath,
	}
}

func (p persistence) Init() (err error) {
	parentDir := filepath.Dir(p.dbPath)
	_, err = os.Stat(parentDir)
	if errors.Is(err, os.ErrNotExist) {
		ui.Info("Creating directory for db: %s", parentDir)
		return os.MkdirAll(parentDir, 0o755)
	}
	return err
}

func (p persistence) openPersistence() (*bolt.DB, error) {
	return bolt.Open(p.dbPath, 0o600, &bolt.Options{Timeout: 1 * time.Minute})
}

func (p persistence) SaveState(state State) error {
	return p.save(BucketState, keyLastState, state)
}

func (p persistence) LoadState() (State, error) {
	var state State
	err := p.load(BucketState, keyLastState, &state)
	return state, err
}

func (p persistence) SaveDetectedDevices(devices []DeviceInfo) error {
	return p.save(BucketDevices, keyDetectedDevices, devices)
}

func (p persistence) LoadDetectedDevices() ([]DeviceInfo, error) {
	var devices []DeviceInfo
	err := p.load(BucketDevices, keyDetectedDevices, &devices)
	return devices, err
}

func (p persistence) save(bucket string, key string, value interface{}) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	})
}

func (p persistence) load(bucket string, key string, target interface{}) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	return db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return ErrNoData
		}
		data := b.Get([]byte(key))
		if data == nil {
			return ErrNoData
		}
		return json.Unmarshal(data, target)
	})
}
