// Package npc moves non-player characters along paths found by pathfind.
//
// A Schedule says where an NPC should go at which time of day. A Path asks a
// Builder for a route to a schedule event's destination, stamps each step
// with a game-clock arrival time and hands the steps to a Mover, which walks
// the NPC as the clock advances.
package npc

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samdwyer/farmstead/internal/gamedata"
	"github.com/samdwyer/farmstead/internal/world"
)

const day = 24 * time.Hour

// Season of the farming year.
type Season int

const (
	SeasonNone Season = iota
	SeasonSpring
	SeasonSummer
	SeasonAutumn
	SeasonWinter
)

var seasonNames = []string{"", "spring", "summer", "autumn", "winter"}

// String returns the lower-case season name, or "" for SeasonNone.
func (s Season) String() string {
	if s < 0 || int(s) >= len(seasonNames) {
		return "unknown"
	}
	return seasonNames[s]
}

// ParseSeason reads a season name. The empty string is SeasonNone.
func ParseSeason(s string) (Season, error) {
	i := slices.Index(seasonNames, strings.ToLower(s))
	if i < 0 {
		return SeasonNone, fmt.Errorf("npc: unknown season %q", s)
	}
	return Season(i), nil
}

// Weather condition an event is restricted to.
type Weather int

const (
	WeatherNone Weather = iota
	WeatherDry
	WeatherRaining
	WeatherSnowing
)

var weatherNames = []string{"", "dry", "raining", "snowing"}

// String returns the lower-case weather name, or "" for WeatherNone.
func (w Weather) String() string {
	if w < 0 || int(w) >= len(weatherNames) {
		return "unknown"
	}
	return weatherNames[w]
}

// ParseWeather reads a weather name. The empty string is WeatherNone.
func ParseWeather(s string) (Weather, error) {
	i := slices.Index(weatherNames, strings.ToLower(s))
	if i < 0 {
		return WeatherNone, fmt.Errorf("npc: unknown weather %q", s)
	}
	return Weather(i), nil
}

// ScheduleEvent tells an NPC where to be at a given time of day.
// Zero Day, Season and Weather mean "any". Among events at the same time a
// lower Priority wins.
type ScheduleEvent struct {
	Hour             int
	Minute           int
	Priority         int
	Day              int
	Weather          Weather
	Season           Season
	ToScene          world.SceneName
	ToGridCoordinate world.GridCoordinate
}

// Time returns the event's start time as an offset from midnight.
func (e ScheduleEvent) Time() time.Duration {
	return time.Duration(e.Hour)*time.Hour + time.Duration(e.Minute)*time.Minute
}

// Matches reports whether the event applies on the given day, season and
// weather.
func (e ScheduleEvent) Matches(day int, season Season, weather Weather) bool {
	return (e.Day == 0 || e.Day == day) &&
		(e.Season == SeasonNone || e.Season == season) &&
		(e.Weather == WeatherNone || e.Weather == weather)
}

// Schedule is an NPC's list of events ordered by time, then priority.
type Schedule struct {
	events []ScheduleEvent
}

// NewSchedule orders events into a schedule.
func NewSchedule(events []ScheduleEvent) *Schedule {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b ScheduleEvent) int {
		if c := cmp.Compare(a.Time(), b.Time()); c != 0 {
			return c
		}
		return cmp.Compare(a.Priority, b.Priority)
	})
	return &Schedule{events: sorted}
}

// ScheduleFromDefs converts loaded schedule definitions.
func ScheduleFromDefs(defs []gamedata.ScheduleDef) (*Schedule, error) {
	events := make([]ScheduleEvent, 0, len(defs))
	for _, d := range defs {
		season, err := ParseSeason(d.Season)
		if err != nil {
			return nil, err
		}
		weather, err := ParseWeather(d.Weather)
		if err != nil {
			return nil, err
		}
		events = append(events, ScheduleEvent{
			Hour:             d.Hour,
			Minute:           d.Minute,
			Priority:         d.Priority,
			Day:              d.Day,
			Season:           season,
			Weather:          weather,
			ToScene:          d.Scene,
			ToGridCoordinate: world.GridCoordinate{X: d.X, Y: d.Y},
		})
	}
	return NewSchedule(events), nil
}

// Events returns the events in schedule order.
func (s *Schedule) Events() []ScheduleEvent {
	return slices.Clone(s.events)
}

// Due returns the event an NPC should follow after the clock moved from
// from to to: the latest matching event whose time lies in (from, to],
// counting across midnight. Ties go to the lowest priority value.
func (s *Schedule) Due(from, to time.Duration, dayOfSeason int, season Season, weather Weather) (ScheduleEvent, bool) {
	window := ((to-from)%day + day) % day
	var (
		best    ScheduleEvent
		bestOff time.Duration
		found   bool
	)
	for _, e := range s.events {
		if !e.Matches(dayOfSeason, season, weather) {
			continue
		}
		off := ((e.Time()-from)%day + day) % day
		if off == 0 || off > window {
			continue
		}
		if !found || off > bestOff {
			best, bestOff, found = e, off, true
		}
	}
	return best, found
}
