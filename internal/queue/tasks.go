package queue

const (
	TypeArtifactArchive = "artifact:archive"
	TypeArtifactPurge   = "artifact:purge"
)

type ArtifactArchivePayload struct {
	UserID int64  `json:"user_id"`
	Audio  []byte `json:"audio"` // base64 on the wire
}

type ArtifactPurgePayload struct{}
