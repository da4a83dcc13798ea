package integration

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/zoobzio/transcode"
	"github.com/zoobzio/transcode/bson"
	"github.com/zoobzio/transcode/json"
	"github.com/zoobzio/transcode/msgpack"
	transcodetest "github.com/zoobzio/transcode/testing"
	"github.com/zoobzio/transcode/toml"
	"github.com/zoobzio/transcode/xml"
	"github.com/zoobzio/transcode/yaml"
)

// Upload is a document whose binary fields carry their own wire form.
type Upload struct {
	Name     string                   `json:"name" yaml:"name" xml:"name" msgpack:"name" bson:"name" toml:"name"`
	Checksum transcode.HexBytes       `json:"checksum" yaml:"checksum" xml:"checksum" msgpack:"checksum" bson:"checksum" toml:"checksum"`
	Payload  transcode.Base64Bytes    `json:"payload" yaml:"payload" xml:"payload" msgpack:"payload" bson:"payload" toml:"payload"`
	Cursor   transcode.Base64URLBytes `json:"cursor" yaml:"cursor" xml:"cursor" msgpack:"cursor" bson:"cursor" toml:"cursor"`
}

func newUpload(t *testing.T) Upload {
	t.Helper()
	payload := []byte("The quick brown fox jumps over the lazy dog")
	sum, err := transcode.Digest(transcode.DigestSHA256, payload)
	if err != nil {
		t.Fatalf("Digest error: %v", err)
	}
	return Upload{
		Name:     "fox.txt",
		Checksum: sum,
		Payload:  payload,
		Cursor:   []byte{0, 1, 2, 63, 64, 127, 128, 254, 255},
	}
}

func TestFormats_RoundTrip(t *testing.T) {
	formats := []transcode.Format{json.New(), yaml.New(), xml.New(), msgpack.New(), bson.New(), toml.New()}

	for _, f := range formats {
		t.Run(f.ContentType(), func(t *testing.T) {
			original := newUpload(t)

			data, err := f.Marshal(original)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}

			var restored Upload
			if err := f.Unmarshal(data, &restored); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}

			if restored.Name != original.Name {
				t.Errorf("Name = %q, want %q", restored.Name, original.Name)
			}
			if !bytes.Equal(restored.Checksum, original.Checksum) {
				t.Errorf("Checksum = %s, want %s", restored.Checksum, original.Checksum)
			}
			if !bytes.Equal(restored.Payload, original.Payload) {
				t.Errorf("Payload = %s, want %s", restored.Payload, original.Payload)
			}
			if !bytes.Equal(restored.Cursor, original.Cursor) {
				t.Errorf("Cursor = %s, want %s", restored.Cursor, original.Cursor)
			}
		})
	}
}

func TestFormats_RejectMalformedField(t *testing.T) {
	f := json.New()

	var u Upload
	err := f.Unmarshal([]byte(`{"name":"x","cursor":"YQ=="}`), &u)
	if err == nil {
		t.Fatal("Unmarshal should reject padded base64url")
	}
	if !errors.Is(err, transcode.ErrInvalidPadding) {
		t.Errorf("error = %v, want ErrInvalidPadding", err)
	}
}

// Request is a query-bound struct exercising every codec the binder supports.
type Request struct {
	Avatar   []byte            `transcode:"avatar,base64"`
	Session  []byte            `transcode:"session,base64url"`
	Hash     []byte            `transcode:"hash,hex"`
	Since    time.Time         `transcode:"since,datetime"`
	Limit    int               `transcode:"limit,int"`
	Ratio    float64           `transcode:"ratio,number"`
	Callback *url.URL          `transcode:"callback,url"`
	Filters  transcode.Params  `transcode:"filters,query"`
	Labels   map[string]string `transcode:"labels,query-object"`
	Internal string            `transcode:"-"`
}

func TestBind_FromQueryString(t *testing.T) {
	ctx := context.Background()
	query := transcode.Use(transcode.QueryObject)

	values, err := query.Parse(ctx, "avatar=SGVsbG8%3D&session=AAEC_w&hash=ff00&since=2024-01-15T10%3A30%3A00Z&limit=25&ratio=0.5"+
		"&callback=https%3A%2F%2FExample.com&filters=b%3D2%26a%3D1&labels=env%3Dprod")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	req, err := transcode.Bind[Request](ctx, values)
	if err != nil {
		t.Fatalf("Bind error: %v", err)
	}

	if string(req.Avatar) != "Hello" {
		t.Errorf("Avatar = %q, want %q", req.Avatar, "Hello")
	}
	if !bytes.Equal(req.Session, []byte{0, 1, 2, 255}) {
		t.Errorf("Session = %v, want [0 1 2 255]", req.Session)
	}
	if !bytes.Equal(req.Hash, []byte{255, 0}) {
		t.Errorf("Hash = %v, want [255 0]", req.Hash)
	}
	if !req.Since.Equal(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)) {
		t.Errorf("Since = %v", req.Since)
	}
	if req.Limit != 25 || req.Ratio != 0.5 {
		t.Errorf("Limit, Ratio = %d, %v, want 25, 0.5", req.Limit, req.Ratio)
	}
	if req.Callback == nil || req.Callback.String() != "https://example.com/" {
		t.Errorf("Callback = %v, want https://example.com/", req.Callback)
	}
	if len(req.Filters) != 2 || req.Filters[0].Key != "b" {
		t.Errorf("Filters = %v, want [b=2 a=1] in order", req.Filters)
	}
	if req.Labels["env"] != "prod" {
		t.Errorf("Labels = %v", req.Labels)
	}

	out, err := transcode.Unbind(ctx, req)
	if err != nil {
		t.Fatalf("Unbind error: %v", err)
	}
	if out["avatar"] != "SGVsbG8=" || out["session"] != "AAEC_w" || out["hash"] != "ff00" {
		t.Errorf("Unbind() = %v", out)
	}
	if out["since"] != "2024-01-15T10:30:00.000Z" {
		t.Errorf("since = %q, want %q", out["since"], "2024-01-15T10:30:00.000Z")
	}
	if out["filters"] != "b=2&a=1" {
		t.Errorf("filters = %q, want %q", out["filters"], "b=2&a=1")
	}
}

func TestFingerprint_AcrossCodecs(t *testing.T) {
	data := []byte("abc")
	for _, name := range []string{"hex", "base64", "base64url"} {
		c, err := transcode.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) error: %v", name, err)
		}
		fp, err := transcode.Fingerprint(c, transcode.DigestBLAKE2b256, data)
		if err != nil {
			t.Fatalf("Fingerprint error: %v", err)
		}
		ok, err := transcode.VerifyFingerprint(c, transcode.DigestBLAKE2b256, data, fp)
		if err != nil || !ok {
			t.Errorf("%s: VerifyFingerprint(%q) = %v, %v, want true", name, fp, ok, err)
		}
		transcodetest.AssertRoundTrip(t, c, data)
	}
}
