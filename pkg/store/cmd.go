package store

import (
	"encoding/binary"
	"encoding/json"

	bolt "go.etcd.io/bbolt"
	. "src.rpncalc.dev/pkg/store/storedefs"
)

// NextCmdSeq returns the next sequence number of the command history.
func (s *dbStore) NextCmdSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddCmd adds a new command to the command history, and returns its sequence
// number. The Seq field of the argument is ignored.
func (s *dbStore) AddCmd(cmd Cmd) (int, error) {
	value, err := json.Marshal(cmd)
	if err != nil {
		return 0, err
	}
	var seq uint64
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), value)
	})
	return int(seq), err
}

// Cmd queries the command history item with the specified sequence number.
func (s *dbStore) Cmd(seq int) (Cmd, error) {
	var cmd Cmd
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		v := b.Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoMatchingCmd
		}
		var err error
		cmd, err = unmarshalCmd(seq, v)
		return err
	})
	return cmd, err
}

// Cmds returns all commands with sequence numbers in [from, upto).
func (s *dbStore) Cmds(from, upto int) ([]Cmd, error) {
	var cmds []Cmd
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		c := b.Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			cmd, err := unmarshalCmd(int(unmarshalSeq(k)), v)
			if err != nil {
				return err
			}
			cmds = append(cmds, cmd)
		}
		return nil
	})
	return cmds, err
}

func unmarshalCmd(seq int, v []byte) (Cmd, error) {
	var cmd Cmd
	if err := json.Unmarshal(v, &cmd); err != nil {
		return Cmd{}, err
	}
	cmd.Seq = seq
	return cmd, nil
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
