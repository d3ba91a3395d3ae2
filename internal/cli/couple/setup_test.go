package couple

import (
	"strings"
	"testing"
)

func TestSetupCmd(t *testing.T) {
	tests := []struct {
		name    string
		cmd     SetupCmd
		wantErr bool
		wantOut string
	}{
		{
			name: "complete profile",
			cmd: SetupCmd{
				Boy: strPtr("Minh"), Girl: strPtr("Lan"),
				BoyAge: intPtr(24), GirlAge: intPtr(23),
				Date: strPtr("2025-03-01"), Time: strPtr("18:00"),
			},
			wantOut: "✓ Profile created: Minh 💕 Lan, meeting on 2025-03-01 at 18:00",
		},
		{
			name: "names are trimmed",
			cmd: SetupCmd{
				Boy: strPtr("  Minh "), Girl: strPtr("Lan"),
				Date: strPtr("2025-03-01"),
			},
			wantOut: "Minh 💕 Lan",
		},
		{
			name:    "missing names",
			cmd:     SetupCmd{Date: strPtr("2025-03-01")},
			wantErr: true,
		},
		{
			name: "meeting in the past",
			cmd: SetupCmd{
				Boy: strPtr("Minh"), Girl: strPtr("Lan"),
				Date: strPtr("2025-02-14"), Time: strPtr("08:59"),
			},
			wantErr: true,
		},
		{
			name: "age out of range",
			cmd: SetupCmd{
				Boy: strPtr("Minh"), Girl: strPtr("Lan"),
				BoyAge: intPtr(0),
				Date:   strPtr("2025-03-01"),
			},
			wantErr: true,
		},
		{
			name: "bad time",
			cmd: SetupCmd{
				Boy: strPtr("Minh"), Girl: strPtr("Lan"),
				Date: strPtr("2025-03-01"), Time: strPtr("25:00"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := newTestContext(t, testNow)

			err := tt.cmd.Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v\n%s", err, tt.wantErr, out.String())
			}

			profile, loadErr := ctx.State.LoadProfile()
			if loadErr != nil {
				t.Fatalf("failed to load profile: %v", loadErr)
			}
			if tt.wantErr {
				if profile != nil {
					t.Errorf("invalid input saved a profile: %+v", profile)
				}
				return
			}
			if profile == nil {
				t.Fatal("profile was not saved")
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output %q does not contain %q", out.String(), tt.wantOut)
			}
		})
	}
}

func TestSetupCmd_UpdateKeepsOtherFields(t *testing.T) {
	ctx, out := newTestContext(t, testNow)
	if err := ctx.State.SaveProfile(testProfile()); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}

	cmd := SetupCmd{Time: strPtr("20:30")}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	profile, err := ctx.State.LoadProfile()
	if err != nil || profile == nil {
		t.Fatalf("failed to load profile: %v", err)
	}
	if profile.MeetingTime != "20:30" || profile.BoyName != "Minh" || profile.GirlNickname != "Bé" {
		t.Errorf("unexpected profile after update: %+v", profile)
	}
	if !strings.Contains(out.String(), "✓ Profile updated") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestProfileCmd(t *testing.T) {
	ctx, out := newTestContext(t, testNow)
	if err := ctx.State.SaveProfile(testProfile()); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}

	if err := (&ProfileCmd{}).Run(ctx); err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	for _, want := range []string{"Minh, 24", "Lan (Bé), 23", "Meeting: 2025-03-01 at 18:00"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	ctx.In = strings.NewReader("y\n")
	if err := (&ProfileCmd{Clear: true}).Run(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if p, _ := ctx.State.LoadProfile(); p != nil {
		t.Errorf("profile survived --clear: %+v", p)
	}
}

func TestCompatCmd(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		profile bool
		wantErr bool
	}{
		{name: "two names", names: []string{"Minh", "Lan"}},
		{name: "from profile", profile: true},
		{name: "no profile", wantErr: true},
		{name: "one name", names: []string{"Minh"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := newTestContext(t, testNow)
			if tt.profile {
				if err := ctx.State.SaveProfile(testProfile()); err != nil {
					t.Fatalf("failed to save profile: %v", err)
				}
			}

			err := (&CompatCmd{Names: tt.names}).Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !strings.Contains(out.String(), "Minh 💕 Lan") {
				t.Errorf("unexpected output: %q", out.String())
			}
		})
	}
}

func TestHearts(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{50, 5},
		{59, 5},
		{99, 9},
		{100, 10},
	}
	for _, tt := range tests {
		if got := strings.Count(hearts(tt.score), "❤"); got != tt.want {
			t.Errorf("hearts(%d) has %d hearts, want %d", tt.score, got, tt.want)
		}
	}
}

func TestSilentCmd(t *testing.T) {
	ctx, out := newTestContext(t, testNow)

	if err := (&SilentCmd{Mode: "on"}).Run(ctx); err != nil {
		t.Fatalf("silent on failed: %v", err)
	}
	if on, _ := ctx.State.SilentMode(); !on {
		t.Error("silent mode not enabled")
	}

	out.Reset()
	if err := (&SilentCmd{Mode: "off"}).Run(ctx); err != nil {
		t.Fatalf("silent off failed: %v", err)
	}
	if !strings.Contains(out.String(), "off") {
		t.Errorf("unexpected output: %q", out.String())
	}
}
