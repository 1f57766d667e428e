package native

// System routes every call to the host operating system.
type System struct {
	DB *Database
}

func NewSystem(db *Database) *System {
	if db == nil {
		db = NewDatabase()
	}

	return &System{DB: db}
}

func (s *System) Stat(path string, cs *CommonStat) error {
	return GetCommonStat(path, cs)
}

func (s *System) LStat(path string, cs *CommonStat) error {
	return GetCommonLStat(path, cs)
}

func (s *System) LinkCount(path string) (int, error) {
	return GetLinkCount(path)
}

func (s *System) GetRLimit(resource int, rl *RLimit) error {
	return GetRLimit(resource, rl)
}

func (s *System) SetRLimit(resource int, rl *RLimit) error {
	return SetRLimit(resource, rl)
}

func (s *System) Umask(mask int) (int, error) {
	return Umask(mask)
}

func (s *System) UserName(uid uint32) (string, error) {
	return s.DB.UserName(uid)
}

func (s *System) GroupName(gid uint32) (string, error) {
	return s.DB.GroupName(gid)
}
