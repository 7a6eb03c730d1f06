package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Health != "/health" {
		t.Fatalf("Health = %q", Health)
	}
	if SignIn != "/signin" {
		t.Fatalf("SignIn = %q", SignIn)
	}
	if GetStartedPrefix != "/get-started/" {
		t.Fatalf("GetStartedPrefix = %q", GetStartedPrefix)
	}
	if GetStartedResults != "/get-started/results" {
		t.Fatalf("GetStartedResults = %q", GetStartedResults)
	}
	if AppPrefix != "/app/" {
		t.Fatalf("AppPrefix = %q", AppPrefix)
	}
	if AppDashboard != "/app/dashboard" {
		t.Fatalf("AppDashboard = %q", AppDashboard)
	}
}
