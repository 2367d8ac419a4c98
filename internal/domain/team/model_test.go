package team

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestInstituteNames_DistinctNonEmptySorted(t *testing.T) {
	t.Parallel()

	teams := []Team{
		{ID: 1, InstituteName: "RVCE"},
		{ID: 2, InstituteName: ""},
		{ID: 3, InstituteName: " BMS "},
		{ID: 4, InstituteName: "RVCE"},
		{ID: 5, InstituteName: "   "},
	}

	got := InstituteNames(teams)
	want := []string{"BMS", "RVCE"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected institutes: got=%v want=%v", got, want)
	}
}

func TestTeam_PlayerCount(t *testing.T) {
	t.Parallel()

	loaded := Team{PlayersLoaded: true, Players: []Member{{ID: 1}, {ID: 2}}, ReportedPlayerCount: 9}
	if got := loaded.PlayerCount(); got != 2 {
		t.Fatalf("expected loaded players to win, got %d", got)
	}

	reported := Team{ReportedPlayerCount: 3}
	if got := reported.PlayerCount(); got != 3 {
		t.Fatalf("expected reported count, got %d", got)
	}
}

func TestInput_ValidationTags(t *testing.T) {
	t.Parallel()

	validate := validator.New()
	if err := validate.Struct(Input{Name: "Alpha", Captain: "Ravi"}); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}

	err := validate.Struct(Input{Name: "Alpha"})
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) != 1 || fieldErrs[0].Field() != "Captain" {
		t.Fatalf("expected only captain to fail, got %v", err)
	}
	if err := validate.Struct(Input{Name: strings.Repeat("x", 121), Captain: "Ravi"}); err == nil {
		t.Fatalf("expected over-long name to fail")
	}
}
