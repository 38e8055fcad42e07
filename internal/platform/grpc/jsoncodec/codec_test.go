package jsoncodec

import (
	"testing"

	"google.golang.org/grpc/encoding"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestCodecRegistered(t *testing.T) {
	if encoding.GetCodec(Name) == nil {
		t.Fatalf("codec %q is not registered", Name)
	}
}

func TestCodecRoundTrip(t *testing.T) {
	c := codec{}

	data, err := c.Marshal(&payload{Name: "steve", Count: 3})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got payload
	if err := c.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Name != "steve" || got.Count != 3 {
		t.Fatalf("unexpected round trip result: %+v", got)
	}
}

func TestCodecMarshalError(t *testing.T) {
	c := codec{}
	if _, err := c.Marshal(make(chan int)); err == nil {
		t.Fatal("expected marshal error for unsupported type")
	}
}

func TestCodecUnmarshalError(t *testing.T) {
	c := codec{}
	var got payload
	if err := c.Unmarshal([]byte("{"), &got); err == nil {
		t.Fatal("expected unmarshal error for truncated payload")
	}
}
