package tabscore

import "testing"

func TestStaffManagerNoStaff(t *testing.T) {
	manager := NewStaffManager()
	manager.AddTab("0")
	manager.AddEmpty()
	manager.AddNext()
	manager.AddSpreadEmpty(4)
	manager.AddSpreadNext(4)
	if got := manager.String(); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestStaffManagerNewStaffAfterTabs(t *testing.T) {
	manager := NewStaffManager()
	manager.AddNote("E")
	manager.AddNote("A")
	if len(manager.staffs) != 1 {
		t.Fatalf("got %d staffs", len(manager.staffs))
	}
	manager.AddTab("0")
	manager.AddNote("D")
	if len(manager.staffs) != 2 {
		t.Fatalf("got %d staffs", len(manager.staffs))
	}
	if got := manager.lastStaff().notes; len(got) != 1 || got[0] != "D" {
		t.Fatalf("got %v", got)
	}
}

func TestStaffManagerOptionsApplyToNewStaffs(t *testing.T) {
	manager := NewStaffManager()
	manager.AddNote("E")
	manager.AddTab("0")
	if err := manager.SetOptions("time=3/4; fidelity=4"); err != nil {
		t.Fatalf("got %v", err)
	}
	// the staff already begun keeps its settings
	first := manager.staffs[0]
	beats, dominant := first.time.Signature()
	if beats != 4 || dominant != 4 {
		t.Fatalf("got %d/%d", beats, dominant)
	}

	manager.AddNote("A")
	second := manager.lastStaff()
	beats, dominant = second.time.Signature()
	if beats != 3 || dominant != 4 {
		t.Fatalf("got %d/%d", beats, dominant)
	}
	if f := second.time.Fidelity(); f != 4 {
		t.Fatalf("got %d", f)
	}
}
