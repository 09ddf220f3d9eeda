package domain

// Workout is a workout programme offered by the gym.
type Workout struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

// Trainer is a coach on staff.
type Trainer struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// Class is a scheduled group session.
type Class struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Time string `json:"time"`
}
