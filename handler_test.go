package photosale

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/photosale/errors"
	"github.com/iov-one/photosale/weavetest/assert"
)

func TestReadOptions(t *testing.T) {
	cases := map[string]struct {
		json    string
		want    []struct{ Key int }
		wantErr bool
	}{
		"happy path": {
			json: `{"list": [{"key": 1}, {"key": 2}]}`,
			want: []struct{ Key int }{{Key: 1}, {Key: 2}},
		},
		"missing key leaves destination untouched": {
			json: `{}`,
		},
		"wrong body": {
			json:    `{"list": "adasda"}`,
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var o Options
			assert.Nil(t, json.Unmarshal([]byte(tc.json), &o))

			var got []struct{ Key int }
			err := o.ReadOptions("list", &got)
			if tc.wantErr {
				if err == nil {
					t.Fatal("want error")
				}
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

type recordInit struct {
	name  string
	calls *[]string
	err   error
}

func (r recordInit) FromGenesis(Options, KVStore) error {
	*r.calls = append(*r.calls, r.name)
	return r.err
}

func TestChainInitializers(t *testing.T) {
	var calls []string
	initializer := ChainInitializers(
		recordInit{name: "first", calls: &calls},
		recordInit{name: "second", calls: &calls, err: errors.ErrInput},
		recordInit{name: "third", calls: &calls},
	)
	err := initializer.FromGenesis(Options{}, nil)
	assert.IsErr(t, errors.ErrInput, err)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestNewCheck(t *testing.T) {
	res := NewCheck(42, "ok")
	assert.Equal(t, int64(42), res.GasAllocated)
	assert.Equal(t, "ok", res.Log)
}
