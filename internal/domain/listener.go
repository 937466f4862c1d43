package domain

// Listener is the stored end-user account reference used by the CLI to
// run the user handshake: the username, the partner device persona to
// bootstrap with, and a secret-store reference for the password. The
// password itself never lives in this record.
type Listener struct {
	Username  string
	Device    DeviceKind
	SecretRef string
}
