package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int64
		wantErr bool
	}{
		{name: "absent", raw: "", want: nil},
		{name: "single id becomes singleton set", raw: "7", want: []int64{7}},
		{name: "malformed", raw: "abc", wantErr: true},
		{name: "float", raw: "1.5", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StateIDs(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrBadParam)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIDList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int64
		wantErr bool
	}{
		{name: "absent", raw: "", want: nil},
		{name: "single", raw: "4", want: []int64{4}},
		{name: "csv", raw: "1,2,3", want: []int64{1, 2, 3}},
		{name: "spaces tolerated", raw: "1, 2", want: []int64{1, 2}},
		{name: "trailing comma", raw: "1,2,", wantErr: true},
		{name: "malformed entry", raw: "1,x,3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IDList("tags", tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrBadParam)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssignedOnly(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    bool
		wantErr bool
	}{
		{name: "absent", raw: "", want: false},
		{name: "zero", raw: "0", want: false},
		{name: "one", raw: "1", want: true},
		{name: "any nonzero", raw: "42", want: true},
		{name: "negative counts as set", raw: "-1", want: true},
		{name: "malformed", raw: "yes", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AssignedOnly(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrBadParam)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
