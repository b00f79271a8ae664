package export

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/model"
)

// Document type discriminators.
const (
	TypeInventory   = "inventory"
	TypeTheftReport = "theft-report"
)

// Literal fill-in markers for the theft-report template.
const (
	PlaceholderFillIn  = "[FILL IN]"
	PlaceholderUnknown = "[UNKNOWN]"
)

// Filename prefixes per report type.
const (
	FilenameBackup    = "carryvault-backup"
	FilenameInventory = "inventory-report"
	FilenameTheft     = "theft-report"
)

// BackupDocument is the full backup: all four collections verbatim plus
// settings and the generation timestamp.
type BackupDocument struct {
	Firearms    []model.Firearm          `json:"firearms"`
	Maintenance []model.MaintenanceEvent `json:"maintenance"`
	Training    []model.TrainingEvent    `json:"training"`
	Permits     []model.Permit           `json:"permits"`
	Settings    model.Settings           `json:"settings"`
	ExportDate  string                   `json:"exportDate"`
}

// Backup builds the full backup document for a snapshot.
func Backup(snap model.Snapshot, now time.Time) BackupDocument {
	return BackupDocument{
		Firearms:    snap.Firearms,
		Maintenance: snap.Maintenance,
		Training:    snap.Training,
		Permits:     snap.Permits,
		Settings:    snap.Settings,
		ExportDate:  now.Format(time.RFC3339),
	}
}

// Snapshot reconstructs the in-memory dataset from a backup document.
// Nil collections (hand-edited backups) come back as empty slices.
func (d BackupDocument) Snapshot() model.Snapshot {
	snap := model.Snapshot{
		Firearms:    d.Firearms,
		Maintenance: d.Maintenance,
		Training:    d.Training,
		Permits:     d.Permits,
		Settings:    d.Settings,
	}
	if snap.Firearms == nil {
		snap.Firearms = []model.Firearm{}
	}
	if snap.Maintenance == nil {
		snap.Maintenance = []model.MaintenanceEvent{}
	}
	if snap.Training == nil {
		snap.Training = []model.TrainingEvent{}
	}
	if snap.Permits == nil {
		snap.Permits = []model.Permit{}
	}
	return snap
}

// InventoryItem is a firearm projected for the inventory report.
// Internal bookkeeping (id, notes, creation timestamp) is excluded.
type InventoryItem struct {
	MakeModel    string  `json:"makeModel"`
	Serial       string  `json:"serial,omitempty"`
	Caliber      string  `json:"caliber,omitempty"`
	Type         string  `json:"type,omitempty"`
	PurchaseDate string  `json:"purchaseDate,omitempty"`
	Price        float64 `json:"price,omitempty"`
}

// InventoryReport is the inventory-only export.
type InventoryReport struct {
	Type      string          `json:"type"`
	Generated string          `json:"generated"`
	Firearms  []InventoryItem `json:"firearms"`
}

// Inventory builds the inventory report for a snapshot.
func Inventory(snap model.Snapshot, now time.Time) InventoryReport {
	items := make([]InventoryItem, len(snap.Firearms))
	for i, f := range snap.Firearms {
		items[i] = InventoryItem{
			MakeModel:    f.MakeModel,
			Serial:       f.Serial,
			Caliber:      f.Caliber,
			Type:         f.Type,
			PurchaseDate: f.PurchaseDate,
			Price:        f.Price,
		}
	}
	return InventoryReport{
		Type:      TypeInventory,
		Generated: now.Format(time.RFC3339),
		Firearms:  items,
	}
}

// OwnerInfo is the personal-info block of the theft report. Every field is
// a literal fill-in marker; the tool stores no personal data.
type OwnerInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// TheftReportItem is a firearm projected for the theft report.
// EstimatedValue is the recorded price, or a placeholder when no price was
// recorded.
type TheftReportItem struct {
	MakeModel      string `json:"makeModel"`
	Serial         string `json:"serial"`
	Caliber        string `json:"caliber"`
	Type           string `json:"type"`
	PurchaseDate   string `json:"purchaseDate"`
	EstimatedValue string `json:"estimatedValue"`
}

// TheftReport is the theft-report template export.
type TheftReport struct {
	Type      string            `json:"type"`
	Generated string            `json:"generated"`
	Owner     OwnerInfo         `json:"owner"`
	Firearms  []TheftReportItem `json:"firearms"`
}

// Theft builds the theft-report template for a snapshot.
func Theft(snap model.Snapshot, now time.Time) TheftReport {
	items := make([]TheftReportItem, len(snap.Firearms))
	for i, f := range snap.Firearms {
		value := PlaceholderUnknown
		if f.Price > 0 {
			value = strconv.FormatFloat(f.Price, 'f', -1, 64)
		}
		items[i] = TheftReportItem{
			MakeModel:      f.MakeModel,
			Serial:         f.Serial,
			Caliber:        f.Caliber,
			Type:           f.Type,
			PurchaseDate:   f.PurchaseDate,
			EstimatedValue: value,
		}
	}
	return TheftReport{
		Type:      TypeTheftReport,
		Generated: now.Format(time.RFC3339),
		Owner: OwnerInfo{
			Name:    PlaceholderFillIn,
			Address: PlaceholderFillIn,
			Phone:   PlaceholderFillIn,
			Email:   PlaceholderFillIn,
		},
		Firearms: items,
	}
}

// Filename returns the local filename for a report:
// <prefix>-<YYYY-MM-DD>.json with the current calendar date.
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s.json", prefix, now.Format(model.DateFormat))
}

// WriteDocument marshals a document with indentation and writes it to path.
func WriteDocument(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// ReadBackup loads a backup document from path.
func ReadBackup(path string) (BackupDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BackupDocument{}, fmt.Errorf("read backup: %w", err)
	}
	var doc BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return BackupDocument{}, fmt.Errorf("parse backup: %w", err)
	}
	return doc, nil
}
