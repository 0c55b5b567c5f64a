package photosale

import (
	"testing"

	"github.com/iov-one/photosale/errors"
	"github.com/iov-one/photosale/weavetest/assert"
)

// noteMsg is a message with a configurable validation result.
type noteMsg struct {
	Text string
	Err  error
}

var _ Msg = (*noteMsg)(nil)

func (noteMsg) Path() string                { return "test/note" }
func (m noteMsg) Validate() error           { return m.Err }
func (noteMsg) Marshal() ([]byte, error)    { return nil, nil }
func (*noteMsg) Unmarshal(raw []byte) error { return nil }

// otherMsg has the same shape as noteMsg but is a different type.
type otherMsg struct {
	noteMsg
}

// fakeTx carries a message or fails to decode it.
type fakeTx struct {
	msg Msg
	err error
}

func (tx fakeTx) GetMsg() (Msg, error) {
	return tx.msg, tx.err
}

func TestExtractMsgFromSum(t *testing.T) {
	cases := map[string]struct {
		tx      Tx
		wantErr *errors.Error
	}{
		"message": {
			tx: fakeTx{msg: &noteMsg{Text: "sunset"}},
		},
		"no transaction": {
			tx:      nil,
			wantErr: errors.ErrInput,
		},
		"no message": {
			tx:      fakeTx{},
			wantErr: errors.ErrInput,
		},
		"typed nil message": {
			tx:      fakeTx{msg: (*noteMsg)(nil)},
			wantErr: errors.ErrInput,
		},
		"message cannot be decoded": {
			tx:      fakeTx{err: errors.ErrModel},
			wantErr: errors.ErrModel,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg, err := ExtractMsgFromSum(tc.tx)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil && msg == nil {
				t.Fatal("want a message")
			}
			if tc.wantErr != nil {
				assert.Nil(t, msg)
			}
		})
	}
}

func TestLoadMsg(t *testing.T) {
	var nilNote *noteMsg

	cases := map[string]struct {
		tx      Tx
		dest    interface{}
		want    interface{}
		wantErr *errors.Error
	}{
		"message is copied": {
			tx:   fakeTx{msg: &noteMsg{Text: "sunset"}},
			dest: &noteMsg{},
			want: &noteMsg{Text: "sunset"},
		},
		"no message": {
			tx:      fakeTx{},
			dest:    &noteMsg{},
			wantErr: errors.ErrInput,
		},
		"destination not a pointer": {
			tx:      fakeTx{msg: &noteMsg{}},
			dest:    noteMsg{},
			wantErr: errors.ErrType,
		},
		"destination of another type": {
			tx:      fakeTx{msg: &noteMsg{}},
			dest:    &otherMsg{},
			wantErr: errors.ErrType,
		},
		"destination nil": {
			tx:      fakeTx{msg: &noteMsg{}},
			dest:    nil,
			wantErr: errors.ErrType,
		},
		"destination typed nil": {
			tx:      fakeTx{msg: &noteMsg{}},
			dest:    nilNote,
			wantErr: errors.ErrType,
		},
		"destination not a message": {
			tx:      fakeTx{msg: &noteMsg{}},
			dest:    new(string),
			wantErr: errors.ErrType,
		},
		"message fails validation": {
			tx:      fakeTx{msg: &noteMsg{Err: errors.ErrAmount}},
			dest:    &noteMsg{},
			wantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := LoadMsg(tc.tx, tc.dest)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, tc.dest)
			}
		})
	}
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "test/note", GetPath(fakeTx{msg: &noteMsg{}}))
	assert.Equal(t, "(missing)", GetPath(fakeTx{err: errors.ErrModel}))
	assert.Equal(t, "(missing)", GetPath(fakeTx{}))
}
