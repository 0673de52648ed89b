package tabscore

import "strings"

// StaffManager owns the ordered staff list. Only the most recent staff is
// ever written to. A note arriving after tab data starts a fresh staff, so
// each staff holds exactly one declared tuning.
type StaffManager struct {
	staffs  []*Staff
	options StaffOptions
}

func NewStaffManager() *StaffManager {
	return &StaffManager{
		options: NewStaffOptions(),
	}
}

// AddNote adds a note to the most recent staff, creating a new staff first
// when there is none or when the most recent one already has tabs.
func (m *StaffManager) AddNote(note string) {
	if last := m.lastStaff(); last == nil || last.hasTabs {
		m.createStaff()
	}
	// the staff is tab-free by construction here
	if err := m.lastStaff().AddNote(note); err != nil {
		panic(err)
	}
}

// AddTab adds a fret cell to the most recent staff. No-op without a staff.
func (m *StaffManager) AddTab(tab string) {
	if staff := m.lastStaff(); staff != nil {
		staff.AddTab(tab)
	}
}

// AddEmpty adds an empty cell to the most recent staff. No-op without a
// staff.
func (m *StaffManager) AddEmpty() {
	if staff := m.lastStaff(); staff != nil {
		staff.AddEmpty()
	}
}

// AddNext rests the most recent staff through the end of the current beat.
// No-op without a staff.
func (m *StaffManager) AddNext() {
	if staff := m.lastStaff(); staff != nil {
		staff.AddNext()
	}
}

func (m *StaffManager) AddSpreadEmpty(amt int) {
	if staff := m.lastStaff(); staff != nil {
		staff.AddSpreadEmpty(amt)
	}
}

func (m *StaffManager) AddSpreadNext(amt int) {
	if staff := m.lastStaff(); staff != nil {
		staff.AddSpreadNext(amt)
	}
}

// SetOptions updates the global defaults used for staffs created after this
// call; staffs already begun keep their settings.
func (m *StaffManager) SetOptions(options string) error {
	return m.options.Set(options)
}

func (m *StaffManager) lastStaff() *Staff {
	if len(m.staffs) == 0 {
		return nil
	}
	return m.staffs[len(m.staffs)-1]
}

func (m *StaffManager) createStaff() {
	staff := NewStaff()
	// a new staff never has tabs; these cannot fail
	beats, dominant := m.options.TimeSignature()
	_ = staff.SetTimeSignature(beats, dominant)
	_ = staff.SetTimeFidelity(m.options.TimeFidelity())
	m.staffs = append(m.staffs, staff)
}

// String renders every staff in order, each followed by a blank line.
func (m *StaffManager) String() string {
	var sb strings.Builder
	for _, staff := range m.staffs {
		sb.WriteString(staff.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
