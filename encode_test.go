package bankroll

import (
	"strings"
	"testing"
)

func TestAccountsRoundTrip(t *testing.T) {
	accounts := sampleState().Accounts
	data, err := EncodeAccounts(accounts)
	if err != nil {
		t.Fatalf("EncodeAccounts() error = %v", err)
	}
	got, err := DecodeAccounts(data, "BRL")
	if err != nil {
		t.Fatalf("DecodeAccounts() error = %v", err)
	}
	if len(got) != len(accounts) {
		t.Fatalf("DecodeAccounts() returned %d accounts want %d", len(got), len(accounts))
	}
	for i, want := range accounts {
		g := got[i]
		if g.ID != want.ID || g.Name != want.Name || !g.CreatedAt.Equal(want.CreatedAt) ||
			!g.Goal.Equal(want.Goal) || g.HasGoal() != want.HasGoal() {
			t.Errorf("account %d = %+v want %+v", i, g, want)
		}
	}
}

func TestSnapshotsRoundTrip(t *testing.T) {
	snapshots := sampleState().Snapshots
	data, err := EncodeSnapshots(snapshots)
	if err != nil {
		t.Fatalf("EncodeSnapshots() error = %v", err)
	}
	got, err := DecodeSnapshots(data, "BRL")
	if err != nil {
		t.Fatalf("DecodeSnapshots() error = %v", err)
	}
	if len(got) != len(snapshots) {
		t.Fatalf("DecodeSnapshots() returned %d snapshots want %d", len(got), len(snapshots))
	}
	for i, want := range snapshots {
		g := got[i]
		if g.ID != want.ID || g.AccountID != want.AccountID || g.Date != want.Date ||
			!g.Balance.Equal(want.Balance) || g.Balance.Currency() != "BRL" || !g.RecordedAt.Equal(want.RecordedAt) {
			t.Errorf("snapshot %d = %+v want %+v", i, g, want)
		}
	}
}

func TestAlertsRoundTrip(t *testing.T) {
	alerts := []Alert{{
		ID:          "x1",
		Kind:        HeavyLoss,
		AccountName: "Betano",
		Delta:       M(-60, "BRL"),
		Percent:     -20,
		Date:        MustParse("2024-03-20"),
		CreatedAt:   at("2024-03-20", 12),
	}}
	data, err := EncodeAlerts(alerts)
	if err != nil {
		t.Fatalf("EncodeAlerts() error = %v", err)
	}
	got, err := DecodeAlerts(data, "BRL")
	if err != nil {
		t.Fatalf("DecodeAlerts() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "x1" || got[0].Kind != HeavyLoss || !got[0].Delta.Equal(alerts[0].Delta) ||
		got[0].Percent != -20 || !got[0].CreatedAt.Equal(alerts[0].CreatedAt) || got[0].Acknowledged {
		t.Errorf("DecodeAlerts() = %+v want %+v", got, alerts)
	}
}

func TestDecodeDropsMalformedEntries(t *testing.T) {
	data := `[
  {"id": "s1", "accountId": "a1", "date": "2024-03-01", "balance": 10},
  {"id": "s2", "accountId": "a1", "balance": 10},
  {"id": "s3", "accountId": "a1", "date": "not a date", "balance": 10},
  42,
  {"id": "s5", "accountId": "a1", "date": "2024-03-02", "balance": "12.5", "recordedAt": "yesterday"},
  {"id": "s6", "accountId": "a1", "date": "2024-03-03", "balance": "12.5"}
]`
	got, err := DecodeSnapshots([]byte(data), "BRL")
	if err == nil {
		t.Error("DecodeSnapshots() reported no error for malformed entries")
	}
	if len(got) != 2 || got[0].ID != "s1" || got[1].ID != "s6" {
		t.Errorf("DecodeSnapshots() = %+v want s1, s6", got)
	}
	assertMoney(t, "s6 balance", got[1].Balance, 12.5)
}

func TestDecodeNotAnArray(t *testing.T) {
	got, err := DecodeAccounts([]byte(`{"id": "a1"}`), "BRL")
	if err == nil || got != nil {
		t.Errorf("DecodeAccounts() = %v, %v want nil and an error", got, err)
	}
	if got, err := DecodeAccounts([]byte("  "), "BRL"); err != nil || len(got) != 0 {
		t.Errorf("DecodeAccounts(empty) = %v, %v", got, err)
	}
}

func TestDecodeAlertConfig(t *testing.T) {
	cfg, err := DecodeAlertConfig([]byte(`{"lossThresholdPercent": 15}`))
	if err != nil {
		t.Fatalf("DecodeAlertConfig() error = %v", err)
	}
	if cfg.LossThreshold != 15 || cfg.GainThreshold != 20 || !cfg.Enabled {
		t.Errorf("DecodeAlertConfig() = %+v want 15, 20, enabled", cfg)
	}

	cfg, err = DecodeAlertConfig([]byte(`{"lossThresholdPercent": -3}`))
	if err == nil {
		t.Error("DecodeAlertConfig() accepted a negative threshold")
	}
	if cfg != DefaultAlertConfig() {
		t.Errorf("DecodeAlertConfig() = %+v want the default", cfg)
	}

	data, err := EncodeAlertConfig(AlertConfig{LossThreshold: 5, GainThreshold: 50})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"enabled": false`) {
		t.Errorf("EncodeAlertConfig() = %s", data)
	}
}
