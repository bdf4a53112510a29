package sqlite3

import "strings"

// Sql assembles an SQL statement and its parameters piece by piece.
// Parameters render as "?" placeholders.
type Sql struct {
	strs   []string
	params []any
}

func NewSql(strs ...string) *Sql {
	s := &Sql{}
	return s.Add(strs...)
}

func (s *Sql) Add(strs ...string) *Sql {
	s.strs = append(s.strs, strs...)
	return s
}

func (s *Sql) Param(p any) *Sql {
	s.params = append(s.params, p)
	s.strs = append(s.strs, "?")
	return s
}

func (s *Sql) Join(sep string, strs ...string) *Sql {
	count := len(strs)
	for i, str := range strs {
		s.Add(str)
		if i < count-1 {
			s.Add(sep)
		}
	}
	return s
}

func (s *Sql) JoinParams(sep string, ps ...any) *Sql {
	count := len(ps)
	for i, p := range ps {
		s.Param(p)
		if i < count-1 {
			s.Add(sep)
		}
	}
	return s
}

func (s *Sql) RemoveLast() *Sql {
	s.strs = s.strs[:len(s.strs)-1]
	return s
}

func (s *Sql) String() string {
	return strings.Join(s.strs, "")
}

func (s *Sql) Params() []any {
	return s.params
}

func (s *Sql) Build() (string, []any) {
	return s.String(), s.Params()
}
