package itinerary

import (
	"math"
	"strings"
)

const cheapestCostFactor = 0.75

var baseDay = []Activity{
	{Time: "09:00", Activity: "Завтрак в традиционном ресторане", Location: "Центр города", Cost: 500, Type: "еда"},
	{Time: "10:30", Activity: "Посещение исторического музея", Location: "Музейный квартал", Cost: 800, Type: "культура"},
	{Time: "14:00", Activity: "Обед в местном ресторане", Location: "Торговый район", Cost: 1200, Type: "еда"},
	{Time: "16:00", Activity: "Шопинг в торговом центре", Location: "Wangfujing Street", Cost: 5000, Type: "шопинг"},
}

// BaseDay returns a fresh copy of the reference day template.
func BaseDay() []Activity {
	return cloneActivities(baseDay)
}

// Normalize fills blank request fields from d. Unknown modes are kept as-is.
func Normalize(req Request, d Defaults) Request {
	out := req
	out.City = strings.TrimSpace(req.City)
	if out.City == "" {
		out.City = d.City
	}
	if out.Days <= 0 {
		out.Days = d.Days
	}
	if out.Budget == nil {
		budget := d.Budget
		out.Budget = &budget
	}
	out.Mode = Mode(strings.TrimSpace(string(req.Mode)))
	if out.Mode == "" {
		out.Mode = d.Mode
	}
	return out
}

// Generate builds a day-by-day plan from the base template using the
// package defaults for any blank field.
func Generate(req Request) Itinerary {
	return generate(Normalize(req, DefaultDefaults()))
}

func generate(req Request) Itinerary {
	plans := make([]DayPlan, req.Days)
	for i := range plans {
		plans[i] = DayPlan{Day: i + 1, Activities: adjust(req.Mode)}
	}
	return Itinerary{
		City:        req.City,
		Days:        req.Days,
		TotalBudget: *req.Budget,
		DailyPlans:  plans,
	}
}

func adjust(mode Mode) []Activity {
	day := BaseDay()
	switch mode {
	case ModeCheapest:
		for i := range day {
			if day[i].Cost != 0 {
				day[i].Cost = int(math.Round(float64(day[i].Cost) * cheapestCostFactor))
			}
		}
		day = append(day, Activity{Time: "18:30", Activity: "Комбинированные билеты (эконом)", Location: "Онлайн", Cost: 0, Type: "логистика"})
	case ModePopular:
		rating := 4.8
		day = append(day, Activity{Time: "12:00", Activity: "Топ-достопримечательность", Location: "Центр", Cost: 1000, Type: "культура", Rating: &rating})
	case ModeCultural:
		day = append(day, Activity{Time: "19:00", Activity: "Культурное событие/фестиваль", Location: "Городская сцена", Cost: 1500, Type: "культура"})
	case ModeWorkMin:
		return []Activity{
			{Time: "10:00", Activity: "Встречи и дела", Location: "Деловой район", Cost: 0, Type: "работа"},
			{Time: "18:00", Activity: "Упрощенная логистика", Location: "По городу", Cost: 300, Type: "логистика"},
		}
	}
	return day
}

// Summarize totals activity costs per day and overall. The budget is not
// consulted.
func Summarize(it Itinerary) Totals {
	totals := Totals{DayCosts: make([]int, 0, len(it.DailyPlans))}
	for _, plan := range it.DailyPlans {
		sum := 0
		for _, a := range plan.Activities {
			sum += a.Cost
		}
		totals.DayCosts = append(totals.DayCosts, sum)
		totals.TotalCost += sum
	}
	return totals
}

func cloneActivities(src []Activity) []Activity {
	out := make([]Activity, len(src), len(src)+1)
	for i, a := range src {
		out[i] = a
		if a.Rating != nil {
			r := *a.Rating
			out[i].Rating = &r
		}
	}
	return out
}
