package storage

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

const recordFormatVersionCurrent = 1

func Encode(r *TokenRecord) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte(recordFormatVersionCurrent)

	if len(r.Digest) > 255 {
		return nil, errors.New("digest too long")
	}
	buf.WriteByte(byte(len(r.Digest)))
	buf.WriteString(r.Digest)

	if len(r.UserID) > 255 {
		return nil, errors.New("userID too long")
	}
	buf.WriteByte(byte(len(r.UserID)))
	buf.WriteString(r.UserID)

	if len(r.Scopes) > 255 {
		return nil, errors.New("too many scopes")
	}
	buf.WriteByte(byte(len(r.Scopes)))
	for _, scope := range r.Scopes {
		if len(scope) > 255 {
			return nil, errors.New("scope too long")
		}
		buf.WriteByte(byte(len(scope)))
		buf.WriteString(scope)
	}

	if r.Kind != KindAccess && r.Kind != KindRefresh {
		return nil, errors.New("invalid token kind")
	}
	buf.WriteByte(byte(r.Kind))

	if err := binary.Write(&buf, binary.BigEndian, r.Generation); err != nil {
		return nil, err
	}

	if len(r.Lineage) > 255 {
		return nil, errors.New("lineage too long")
	}
	buf.WriteByte(byte(len(r.Lineage)))
	buf.WriteString(r.Lineage)

	if len(r.LinkedDigest) > 255 {
		return nil, errors.New("linked digest too long")
	}
	buf.WriteByte(byte(len(r.LinkedDigest)))
	buf.WriteString(r.LinkedDigest)

	if err := binary.Write(&buf, binary.BigEndian, r.IssuedAt); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.BigEndian, r.ExpiresAt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func Decode(data []byte) (*TokenRecord, error) {
	reader := bytes.NewReader(data)

	version, err := reader.ReadByte()
	if err != nil {
		return nil, err
	}
	if version != recordFormatVersionCurrent {
		return nil, errors.New("unsupported record schema version")
	}

	r := &TokenRecord{}

	if r.Digest, err = readString(reader); err != nil {
		return nil, err
	}
	if r.UserID, err = readString(reader); err != nil {
		return nil, err
	}

	scopeCount, err := reader.ReadByte()
	if err != nil {
		return nil, err
	}
	if scopeCount > 0 {
		r.Scopes = make([]string, 0, scopeCount)
		for i := 0; i < int(scopeCount); i++ {
			scope, err := readString(reader)
			if err != nil {
				return nil, err
			}
			r.Scopes = append(r.Scopes, scope)
		}
	}

	kind, err := reader.ReadByte()
	if err != nil {
		return nil, err
	}
	if TokenKind(kind) != KindAccess && TokenKind(kind) != KindRefresh {
		return nil, errors.New("invalid token kind")
	}
	r.Kind = TokenKind(kind)

	if err := binary.Read(reader, binary.BigEndian, &r.Generation); err != nil {
		return nil, err
	}

	if r.Lineage, err = readString(reader); err != nil {
		return nil, err
	}
	if r.LinkedDigest, err = readString(reader); err != nil {
		return nil, err
	}

	if err := binary.Read(reader, binary.BigEndian, &r.IssuedAt); err != nil {
		return nil, err
	}
	if err := binary.Read(reader, binary.BigEndian, &r.ExpiresAt); err != nil {
		return nil, err
	}

	if reader.Len() != 0 {
		return nil, errors.New("trailing bytes after record")
	}

	return r, nil
}

func readString(reader *bytes.Reader) (string, error) {
	size, err := reader.ReadByte()
	if err != nil {
		return "", err
	}
	if size == 0 {
		return "", nil
	}

	raw := make([]byte, size)
	if _, err := io.ReadFull(reader, raw); err != nil {
		return "", err
	}
	return string(raw), nil
}
