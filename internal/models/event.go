package models

// Known origins for a bed-release event. The field is an open string tag;
// consumers must accept values outside this list.
const (
	ReleaseOriginDischarge   = "alta_paciente"
	ReleaseOriginMaintenance = "mantenimiento"
	ReleaseOriginTransfer    = "traslado"
	ReleaseOriginSystemAuto  = "system_auto"
)

// BedReleaseEvent announces that a bed has become available. Published on
// discharge and consumed asynchronously to converge bed state; delivery is
// at-least-once, so handling must be idempotent.
type BedReleaseEvent struct {
	BedID      string `json:"bedId"`
	PatientID  string `json:"patientId"`
	ReleasedAt string `json:"releasedAt"`
	Origin     string `json:"origin"`
}
