package memory

import (
	"github.com/mahotsav/championship-admin/internal/domain/player"
	"github.com/mahotsav/championship-admin/internal/domain/team"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Thunder Strikers", InstituteName: "NIT Warangal", Captain: "Arjun Rao", ViceCaptain: "Kiran Kumar"},
		{ID: 2, Name: "Royal Challengers", InstituteName: "NIT Warangal", Captain: "Vikram Reddy"},
		{ID: 3, Name: "Deccan Riders", InstituteName: "JNTU Hyderabad", Captain: "Sai Teja", ViceCaptain: "Rohit Varma"},
		{ID: 4, Name: "Coastal Kings", InstituteName: "Andhra University", Captain: "Praveen Naidu"},
		{ID: 5, Name: "Golconda Warriors", Captain: "Imran Khan", ViceCaptain: "Farhan Ali"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, Name: "Arjun Rao", RegistrationNumber: "21CS1001", Branch: "CSE", Section: "A", Year: "3", MobileNumber: "9000000001", Team: &player.TeamRef{ID: 1}},
		{ID: 2, Name: "Kiran Kumar", RegistrationNumber: "21EC1002", Branch: "ECE", Section: "B", Year: "3", MobileNumber: "9000000002", Team: &player.TeamRef{ID: 1}},
		{ID: 3, Name: "Vikram Reddy", RegistrationNumber: "22ME1003", Branch: "MECH", Section: "A", Year: "2", MobileNumber: "9000000003", Team: &player.TeamRef{ID: 2}},
		{ID: 4, Name: "Sai Teja", RegistrationNumber: "20CS1004", Branch: "CSE", Section: "C", Year: "4", MobileNumber: "9000000004", Team: &player.TeamRef{ID: 3}},
		{ID: 5, Name: "Praveen Naidu", RegistrationNumber: "23EE1005", Branch: "EEE", Section: "A", Year: "1", MobileNumber: "9000000005", Team: &player.TeamRef{ID: 4}},
		{ID: 6, Name: "Nikhil Sharma", RegistrationNumber: "22IT1006", Branch: "IT", Section: "B", Year: "2", MobileNumber: "9000000006"},
	}
}
