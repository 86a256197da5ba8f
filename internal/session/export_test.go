package session

import "time"

func (st *Store) SetClock(now func() time.Time) {
	st.now = now
}
