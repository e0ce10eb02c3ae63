package service

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"asset-signature-service/internal/core/domain"
)

const (
	// tokenFieldCount is the exact number of |-delimited fields a decoded
	// token must have. Anything else is a decode error, never a partial
	// result.
	tokenFieldCount = 4

	// tokenTimeLayout is the timestamp format embedded in tokens:
	// timezone-naive local time, optional sub-second precision, matching
	// the storage semantics of the rest of the system.
	tokenTimeLayout = "2006-01-02T15:04:05.999999999"
)

// ErrMalformedToken is returned for any token that cannot be decoded into
// exactly four fields.
var ErrMalformedToken = fmt.Errorf("malformed signature token")

// DecodedToken holds the four raw fields of a decoded acknowledgment token.
// Fields stay as strings; identity checks are string-exact by contract.
type DecodedToken struct {
	Digest    string
	Timestamp string
	SignerID  string
	AssetID   string
}

// ParseTimestamp parses the embedded naive-local timestamp.
func (t *DecodedToken) ParseTimestamp() (time.Time, error) {
	return time.ParseInLocation(tokenTimeLayout, t.Timestamp, time.Local)
}

// ParseSignerID parses the embedded signer id.
func (t *DecodedToken) ParseSignerID() (int64, error) {
	return strconv.ParseInt(t.SignerID, 10, 64)
}

// PayloadCodec builds the canonical signing payload and encodes/decodes the
// opaque acknowledgment token. Both directions are deterministic: two calls
// with identical inputs produce byte-identical output, which is what makes
// later verification possible at all.
type PayloadCodec struct{}

// NewPayloadCodec creates a codec.
func NewPayloadCodec() *PayloadCodec {
	return &PayloadCodec{}
}

// BuildPayload produces the canonical, order-fixed representation of what is
// being attested: asset identity and its distinguishing fields, then the
// signer identity, then the free-text notes (empty string when absent).
func (c *PayloadCodec) BuildPayload(ack *domain.AcknowledgmentContext, signer *domain.Signer) string {
	return fmt.Sprintf("%d|%s|%s|%s|%d|%s|%s",
		ack.AssetID,
		ack.SerialNumber,
		ack.IssuedTo,
		ack.Station,
		signer.ID,
		signer.Email,
		ack.Notes,
	)
}

// EncodeToken wraps digest|timestamp|signerID|assetID in base64. The
// timestamp rides in plaintext and is not covered by the digest.
func (c *PayloadCodec) EncodeToken(digest string, ts time.Time, signerID, assetID int64) string {
	raw := fmt.Sprintf("%s|%s|%d|%d", digest, ts.Format(tokenTimeLayout), signerID, assetID)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// DecodeToken reverses EncodeToken. Bad base64 or any field count other than
// four yields ErrMalformedToken.
func (c *PayloadCodec) DecodeToken(token string) (*DecodedToken, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrMalformedToken
	}
	parts := strings.Split(string(raw), "|")
	if len(parts) != tokenFieldCount {
		return nil, ErrMalformedToken
	}
	return &DecodedToken{
		Digest:    parts[0],
		Timestamp: parts[1],
		SignerID:  parts[2],
		AssetID:   parts[3],
	}, nil
}
