package bankroll

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Book owns the accounts, the balance log, the alerts and the alert
// configuration of a bankroll, and persists them to a Store.
//
// Every mutation is validated first, then applied in memory, then saved. A
// failed save never undoes the mutation: it is logged and reported by Err.
//
// A Book is not safe for concurrent use.
type Book struct {
	store    Store
	currency string

	accounts    []Account
	snapshots   []Snapshot
	alerts      []Alert
	alertConfig AlertConfig
	configured  bool // alertConfig was loaded from the store or set.

	err error

	now   func() time.Time
	newID func() string
}

// OpenBook loads a book from the store.
//
// Missing records are empty. A record that cannot be read, or that is not
// JSON at all, is an error: opening an empty book over it would overwrite it
// on the next save. Malformed entries inside a record are logged and dropped.
func OpenBook(store Store, currency string) (*Book, error) {
	b := &Book{
		store:       store,
		currency:    currency,
		alertConfig: DefaultAlertConfig(),
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}

	var err error
	if b.accounts, err = load(store, KeyAccounts, func(data []byte) ([]Account, error) { return DecodeAccounts(data, currency) }); err != nil {
		return nil, err
	}
	if b.snapshots, err = load(store, KeySnapshots, func(data []byte) ([]Snapshot, error) { return DecodeSnapshots(data, currency) }); err != nil {
		return nil, err
	}
	if b.alerts, err = load(store, KeyAlerts, func(data []byte) ([]Alert, error) { return DecodeAlerts(data, currency) }); err != nil {
		return nil, err
	}

	data, err := store.Get(KeyAlertConfig)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("could not load the alert configuration: %w", err)
	default:
		cfg, err := DecodeAlertConfig(data)
		if err != nil {
			log.Printf("using the default alert configuration: %v", err)
		}
		b.alertConfig = cfg
		b.configured = err == nil
	}
	return b, nil
}

// load reads and decodes one record. A missing record is empty.
func load[T any](store Store, key string, decode func([]byte) ([]T, error)) ([]T, error) {
	data, err := store.Get(key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", key, err)
	}
	values, err := decode(data)
	if err != nil {
		if values == nil {
			// the record itself is unreadable.
			return nil, fmt.Errorf("could not load %s: %w", key, err)
		}
		log.Printf("dropped malformed entries while loading %s: %v", key, err)
	}
	return values, nil
}

// save persists the given records. Failures are logged and remembered.
func (b *Book) save(keys ...string) {
	for _, key := range keys {
		var data []byte
		var err error
		switch key {
		case KeyAccounts:
			data, err = EncodeAccounts(b.accounts)
		case KeySnapshots:
			data, err = EncodeSnapshots(b.snapshots)
		case KeyAlerts:
			data, err = EncodeAlerts(b.alerts)
		case KeyAlertConfig:
			data, err = EncodeAlertConfig(b.alertConfig)
		}
		if err == nil {
			err = b.store.Put(key, data)
		}
		if err != nil {
			log.Printf("could not save %s: %v", key, err)
			b.err = errors.Join(b.err, fmt.Errorf("could not save %s: %w", key, err))
		}
	}
}

// Err returns the persistence failures that happened since the book was
// opened, or nil.
func (b *Book) Err() error { return b.err }

// Currency returns the currency of every amount in the book.
func (b *Book) Currency() string { return b.currency }

// State returns a copy of the accounts and the balance log.
func (b *Book) State() State {
	return State{
		Currency:  b.currency,
		Accounts:  slices.Clone(b.accounts),
		Snapshots: slices.Clone(b.snapshots),
	}
}

// Alerts returns a copy of the alerts, in the order they were raised.
func (b *Book) Alerts() []Alert { return slices.Clone(b.alerts) }

// AlertConfig returns the current alert configuration.
func (b *Book) AlertConfig() AlertConfig { return b.alertConfig }

// AddAccount registers a new account. The name is trimmed and must not be
// used by another account, ignoring case. A zero goal means no goal.
func (b *Book) AddAccount(name string, goal Money) (Account, error) {
	name, err := validateAccountName(name, b.accounts)
	if err != nil {
		return Account{}, err
	}
	if err := validateGoal(goal); err != nil {
		return Account{}, err
	}
	a := Account{
		ID:        b.newID(),
		Name:      name,
		CreatedAt: b.now(),
		Goal:      goal.In(b.currency),
	}
	b.accounts = append(b.accounts, a)
	b.save(KeyAccounts)
	return a, nil
}

// FindAccount returns the account with the given ID, or with the given name
// ignoring case.
func (b *Book) FindAccount(ref string) (Account, error) {
	for _, a := range b.accounts {
		if a.ID == ref {
			return a, nil
		}
	}
	for _, a := range b.accounts {
		if sameName(a.Name, ref) {
			return a, nil
		}
	}
	return Account{}, fmt.Errorf("%w: %q", ErrUnknownAccount, ref)
}

// SetGoal sets the target balance of an account. A zero goal clears it.
func (b *Book) SetGoal(ref string, goal Money) (Account, error) {
	a, err := b.FindAccount(ref)
	if err != nil {
		return Account{}, err
	}
	if err := validateGoal(goal); err != nil {
		return Account{}, err
	}
	i := slices.IndexFunc(b.accounts, func(x Account) bool { return x.ID == a.ID })
	b.accounts[i].Goal = goal.In(b.currency)
	b.save(KeyAccounts)
	return b.accounts[i], nil
}

// Record appends a balance snapshot for an account.
//
// The change from the account's latest snapshot before the append is checked
// against the alert configuration. A raised alert is appended to the alerts
// and returned.
func (b *Book) Record(ref string, on Date, balance Money) (Snapshot, *Alert, error) {
	a, err := b.FindAccount(ref)
	if err != nil {
		return Snapshot{}, nil, err
	}
	if err := validateSnapshot(on); err != nil {
		return Snapshot{}, nil, err
	}
	s := Snapshot{
		ID:         b.newID(),
		AccountID:  a.ID,
		Date:       on,
		Balance:    balance.In(b.currency),
		RecordedAt: b.now(),
	}
	prior, _ := LatestTwo(b.snapshots, a.ID)
	alert := EvaluateAlert(b.alertConfig, prior, s, a.Name)

	b.snapshots = append(b.snapshots, s)
	b.save(KeySnapshots)
	if alert != nil {
		alert.ID = b.newID()
		alert.CreatedAt = s.RecordedAt
		b.alerts = append(b.alerts, *alert)
		b.save(KeyAlerts)
	}
	return s, alert, nil
}

// minPrefix is the shortest ID prefix accepted to designate a record.
const minPrefix = 4

// findByID returns the index of the record with the given ID, or of the only
// record whose ID starts with it.
func findByID[T any](records []T, id func(T) string, ref string) int {
	if i := slices.IndexFunc(records, func(r T) bool { return id(r) == ref }); i >= 0 {
		return i
	}
	if len(ref) < minPrefix {
		return -1
	}
	found := -1
	for i, r := range records {
		if strings.HasPrefix(id(r), ref) {
			if found >= 0 {
				return -1 // ambiguous
			}
			found = i
		}
	}
	return found
}

func (b *Book) snapshotIndex(id string) (int, error) {
	i := findByID(b.snapshots, func(s Snapshot) string { return s.ID }, id)
	if i < 0 {
		return -1, fmt.Errorf("%w: %q", ErrUnknownSnapshot, id)
	}
	return i, nil
}

// Snapshot returns the snapshot with the given ID, or unique ID prefix.
func (b *Book) Snapshot(id string) (Snapshot, error) {
	i, err := b.snapshotIndex(id)
	if err != nil {
		return Snapshot{}, err
	}
	return b.snapshots[i], nil
}

// UpdateSnapshot replaces the date and balance of a snapshot, in place. Its
// recording time is kept. Alerts are not re-evaluated.
func (b *Book) UpdateSnapshot(id string, on Date, balance Money) (Snapshot, error) {
	i, err := b.snapshotIndex(id)
	if err != nil {
		return Snapshot{}, err
	}
	if err := validateSnapshot(on); err != nil {
		return Snapshot{}, err
	}
	b.snapshots[i].Date = on
	b.snapshots[i].Balance = balance.In(b.currency)
	b.save(KeySnapshots)
	return b.snapshots[i], nil
}

// DeleteSnapshot removes a snapshot from the log.
func (b *Book) DeleteSnapshot(id string) error {
	i, err := b.snapshotIndex(id)
	if err != nil {
		return err
	}
	b.snapshots = slices.Delete(b.snapshots, i, i+1)
	b.save(KeySnapshots)
	return nil
}

func (b *Book) alertIndex(id string) (int, error) {
	i := findByID(b.alerts, func(a Alert) string { return a.ID }, id)
	if i < 0 {
		return -1, fmt.Errorf("%w: %q", ErrUnknownAlert, id)
	}
	return i, nil
}

// Acknowledge marks an alert as read.
func (b *Book) Acknowledge(id string) error {
	i, err := b.alertIndex(id)
	if err != nil {
		return err
	}
	b.alerts[i].Acknowledged = true
	b.save(KeyAlerts)
	return nil
}

// AcknowledgeAll marks every alert as read, and returns how many were not.
func (b *Book) AcknowledgeAll() int {
	n := 0
	for i := range b.alerts {
		if !b.alerts[i].Acknowledged {
			b.alerts[i].Acknowledged = true
			n++
		}
	}
	if n > 0 {
		b.save(KeyAlerts)
	}
	return n
}

// RemoveAlert deletes an alert permanently.
func (b *Book) RemoveAlert(id string) error {
	i, err := b.alertIndex(id)
	if err != nil {
		return err
	}
	b.alerts = slices.Delete(b.alerts, i, i+1)
	b.save(KeyAlerts)
	return nil
}

// SetAlertConfig replaces the alert configuration.
func (b *Book) SetAlertConfig(cfg AlertConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	b.alertConfig = cfg
	b.configured = true
	b.save(KeyAlertConfig)
	return nil
}

// SetDefaultAlertConfig uses cfg as the alert configuration unless one was
// stored already. Nothing is saved.
func (b *Book) SetDefaultAlertConfig(cfg AlertConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !b.configured {
		b.alertConfig = cfg
	}
	return nil
}

// ImportResult counts what an import added to the book.
type ImportResult struct {
	Accounts  int // accounts created.
	Merged    int // imported accounts matched to an existing one by name.
	Snapshots int // snapshots appended.
	Skipped   int // snapshots already present, undated or without account.
}

// Import merges accounts and snapshots coming from another book.
//
// Imported accounts are matched to existing ones by name, ignoring case, and
// created otherwise. Snapshots are attached to the matching account. A snapshot
// whose ID is already in the log is skipped, so that importing twice is
// harmless. No alert is raised by an import.
func (b *Book) Import(accounts []Account, snapshots []Snapshot) (ImportResult, error) {
	var res ImportResult
	ids := make(map[string]string) // imported account ID to book account ID.
	for _, a := range accounts {
		if strings.TrimSpace(a.Name) == "" {
			return ImportResult{}, fmt.Errorf("%w: imported account %q has no name", ErrInvalid, a.ID)
		}
	}
	for _, a := range accounts {
		if existing, err := b.FindAccount(a.Name); err == nil {
			ids[a.ID] = existing.ID
			res.Merged++
			continue
		}
		importedID := a.ID
		a.Name = strings.TrimSpace(a.Name)
		if a.ID == "" || slices.ContainsFunc(b.accounts, func(x Account) bool { return x.ID == a.ID }) {
			a.ID = b.newID()
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = b.now()
		}
		a.Goal = a.Goal.In(b.currency)
		if !a.Goal.IsPositive() {
			a.Goal = Money{}
		}
		ids[importedID] = a.ID
		b.accounts = append(b.accounts, a)
		res.Accounts++
	}

	known := make(map[string]bool, len(b.snapshots))
	for _, s := range b.snapshots {
		known[s.ID] = true
	}
	for _, s := range snapshots {
		accountID, ok := ids[s.AccountID]
		if !ok || known[s.ID] || validateSnapshot(s.Date) != nil {
			res.Skipped++
			continue
		}
		if s.ID == "" {
			s.ID = b.newID()
		}
		if s.RecordedAt.IsZero() {
			s.RecordedAt = b.now()
		}
		s.AccountID = accountID
		s.Balance = s.Balance.In(b.currency)
		known[s.ID] = true
		b.snapshots = append(b.snapshots, s)
		res.Snapshots++
	}
	if res.Accounts > 0 {
		b.save(KeyAccounts)
	}
	if res.Snapshots > 0 {
		b.save(KeySnapshots)
	}
	return res, nil
}
