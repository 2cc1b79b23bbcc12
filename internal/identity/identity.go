package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// PostID derives a stable blog post identifier from its slug so repeated
// markdown imports stay idempotent.
func PostID(slug string) string {
	return UUID("sproux:post:" + strings.ToLower(strings.TrimSpace(slug))).String()
}

// ArticleID derives a stable help-center article identifier from its slug.
func ArticleID(slug string) string {
	return UUID("sproux:helpdesk:article:" + strings.ToLower(strings.TrimSpace(slug))).String()
}

// AttachmentID derives a stable media attachment identifier from its file name.
func AttachmentID(fileName string) string {
	return UUID("sproux:media:" + strings.TrimSpace(fileName)).String()
}
