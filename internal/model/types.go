package model

// DateFormat is the layout for calendar-date fields.
const DateFormat = "2006-01-02"

// Firearm is a single owned firearm.
type Firearm struct {
	ID           int64   `json:"id"`
	MakeModel    string  `json:"makeModel"`
	Serial       string  `json:"serial,omitempty"`
	Caliber      string  `json:"caliber,omitempty"`
	Type         string  `json:"type,omitempty"`
	PurchaseDate string  `json:"purchaseDate,omitempty"`
	Price        float64 `json:"price,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// MaintenanceEvent records cleaning, repair, or other upkeep work.
// FirearmID is a weak reference; nil means "general" (not tied to one
// firearm).
type MaintenanceEvent struct {
	ID               int64  `json:"id"`
	Type             string `json:"type"`
	Date             string `json:"date,omitempty"`
	FirearmID        *int64 `json:"firearmId,omitempty"`
	FirearmMakeModel string `json:"firearmMakeModel,omitempty"`
	Notes            string `json:"notes,omitempty"`
	CreatedAt        string `json:"createdAt"`
}

// TrainingEvent records a range session, class, or qualification.
type TrainingEvent struct {
	ID        int64   `json:"id"`
	Type      string  `json:"type"`
	Date      string  `json:"date,omitempty"`
	Duration  float64 `json:"duration"`
	FirearmID *int64  `json:"firearmId,omitempty"`
	Notes     string  `json:"notes,omitempty"`
	Score     string  `json:"score,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// Permit is a carry permit or similar regulatory document.
type Permit struct {
	ID             int64  `json:"id"`
	Type           string `json:"type"`
	State          string `json:"state,omitempty"`
	IssueDate      string `json:"issueDate,omitempty"`
	ExpirationDate string `json:"expirationDate,omitempty"`
	PermitNumber   string `json:"permitNumber,omitempty"`
	Notes          string `json:"notes,omitempty"`
	CreatedAt      string `json:"createdAt"`
}

// NotificationSettings holds the three independent alert toggles.
type NotificationSettings struct {
	PermitAlerts      bool `json:"permitAlerts"`
	MaintenanceAlerts bool `json:"maintenanceAlerts"`
	TrainingAlerts    bool `json:"trainingAlerts"`
}

// Settings is the singleton user-preferences record.
type Settings struct {
	UserState     string               `json:"userState"`
	Notifications NotificationSettings `json:"notifications"`
}

// DefaultSettings returns the settings used when none have been persisted:
// empty jurisdiction and all notification toggles enabled.
func DefaultSettings() Settings {
	return Settings{
		UserState: "",
		Notifications: NotificationSettings{
			PermitAlerts:      true,
			MaintenanceAlerts: true,
			TrainingAlerts:    true,
		},
	}
}

// Snapshot is the full in-memory dataset: the four record collections plus
// settings. Read-only consumers (alerts, export) operate on a Snapshot.
type Snapshot struct {
	Firearms    []Firearm          `json:"firearms"`
	Maintenance []MaintenanceEvent `json:"maintenance"`
	Training    []TrainingEvent    `json:"training"`
	Permits     []Permit           `json:"permits"`
	Settings    Settings           `json:"settings"`
}

// EmptySnapshot returns a Snapshot with empty (non-nil) collections and
// default settings. Used when the store is unavailable or freshly created.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Firearms:    []Firearm{},
		Maintenance: []MaintenanceEvent{},
		Training:    []TrainingEvent{},
		Permits:     []Permit{},
		Settings:    DefaultSettings(),
	}
}
