package bankroll

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// Keys of the web dashboard in the browser's localStorage.
const (
	WebAccountsKey  = "betting-casas"
	WebSnapshotsKey = "betting-registros"
)

/*
DecodeWebStorage reads a dump of the web dashboard's localStorage, as an
object keyed by storage key:

	{
	    "betting-casas": "[{\"id\":\"1709290000000\",\"nome\":\"Bet365\",\"createdAt\":\"2024-03-01T10:00:00.000Z\",\"meta\":1000}]",
	    "betting-registros": [
	        {"id":"1709290000001","casaDeApostaId":"1709290000000","data":"2024-03-01","saldo":500.5,"createdAt":"2024-03-01T10:05:00.000Z"}
	    ]
	}

Values are either arrays or the JSON string the browser stores. Malformed
entries are logged and skipped. Amounts are set in currency.
*/
func DecodeWebStorage(r io.Reader, currency string) ([]Account, []Snapshot, error) {
	var jobj map[string]any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, nil, fmt.Errorf("web storage dump is not a JSON object: %w", err)
	}

	jaccounts, err := webEntries(jobj, WebAccountsKey)
	if err != nil {
		return nil, nil, err
	}
	jsnapshots, err := webEntries(jobj, WebSnapshotsKey)
	if err != nil {
		return nil, nil, err
	}

	var accounts []Account
	for i, entry := range jaccounts {
		a, err := webAccount(entry, currency)
		if err != nil {
			log.Printf("skipping %s[%d]: %v", WebAccountsKey, i, err)
			continue
		}
		accounts = append(accounts, a)
	}
	var snapshots []Snapshot
	for i, entry := range jsnapshots {
		s, err := webSnapshot(entry, currency)
		if err != nil {
			log.Printf("skipping %s[%d]: %v", WebSnapshotsKey, i, err)
			continue
		}
		snapshots = append(snapshots, s)
	}
	return accounts, snapshots, nil
}

// webEntries returns the array stored under key, decoding it from its string
// form if needed. A missing key is empty.
func webEntries(jobj map[string]any, key string) ([]any, error) {
	jval, ok := jobj[key]
	if !ok || jval == nil {
		return nil, nil
	}
	if s, ok := jval.(string); ok {
		if err := json.Unmarshal([]byte(s), &jval); err != nil {
			return nil, fmt.Errorf("value of %q is not valid JSON: %w", key, err)
		}
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("value of %q is not an array", key)
	}
	return jlist, nil
}

var errMissing = errors.New("missing")

// jget evaluates a jsonpath and keeps the first answer.
func jget(path string, jobj any) (any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, errMissing)
	}
	// because jsonpath is not clear about whether it returns a list of 1 answer, or a single answer:
	// keep the first one if any
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return nil, fmt.Errorf("%s: %w", path, errMissing)
		}
		jval = jlist[0]
	}
	if jval == nil {
		return nil, fmt.Errorf("%s: %w", path, errMissing)
	}
	return jval, nil
}

// jstring reads a string, numbers are accepted as the browser used them for ids.
func jstring(path string, jobj any) (string, error) {
	jval, err := jget(path, jobj)
	if err != nil {
		return "", err
	}
	switch v := jval.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("%s: not a string: %v", path, jval)
}

// jmoney reads an amount, as a number or a numeric string.
func jmoney(path string, jobj any, currency string) (Money, error) {
	jval, err := jget(path, jobj)
	if err != nil {
		return Money{}, err
	}
	switch v := jval.(type) {
	case float64:
		return M(v, currency), nil
	case string:
		m, err := ParseMoney(v, currency)
		if err != nil {
			return Money{}, fmt.Errorf("%s: invalid amount %q: %w", path, v, err)
		}
		return m, nil
	}
	return Money{}, fmt.Errorf("%s: not a number: %v", path, jval)
}

// jtime reads an optional timestamp, zero if missing.
func jtime(path string, jobj any) (time.Time, error) {
	s, err := jstring(path, jobj)
	if errors.Is(err, errMissing) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid timestamp %q: %w", path, s, err)
	}
	return t.UTC(), nil
}

func webAccount(jobj any, currency string) (Account, error) {
	name, err := jstring("$.nome", jobj)
	if err != nil {
		return Account{}, err
	}
	id, err := jstring("$.id", jobj)
	if err != nil {
		return Account{}, err
	}
	createdAt, err := jtime("$.createdAt", jobj)
	if err != nil {
		return Account{}, err
	}
	a := Account{ID: id, Name: name, CreatedAt: createdAt}
	goal, err := jmoney("$.meta", jobj, currency)
	switch {
	case errors.Is(err, errMissing):
	case err != nil:
		return Account{}, err
	case goal.IsPositive():
		a.Goal = goal
	}
	return a, nil
}

func webSnapshot(jobj any, currency string) (Snapshot, error) {
	id, err := jstring("$.id", jobj)
	if err != nil {
		return Snapshot{}, err
	}
	accountID, err := jstring("$.casaDeApostaId", jobj)
	if err != nil {
		return Snapshot{}, err
	}
	day, err := jstring("$.data", jobj)
	if err != nil {
		return Snapshot{}, err
	}
	on, err := ParseDate(day)
	if err != nil || day == "" {
		return Snapshot{}, fmt.Errorf("$.data: invalid date %q", day)
	}
	balance, err := jmoney("$.saldo", jobj, currency)
	if err != nil {
		return Snapshot{}, err
	}
	recordedAt, err := jtime("$.createdAt", jobj)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		ID:         id,
		AccountID:  accountID,
		Date:       on,
		Balance:    balance,
		RecordedAt: recordedAt,
	}, nil
}
