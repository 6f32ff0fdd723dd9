package taskparse

import (
	"regexp"
	"time"

	"pomoflow/pkg/recurrence"
)

// Keyword lexicons for Portuguese task text (plus the English synonyms the
// product accepts). All tables are fixed at compile time; matching is
// substring-based over lower-cased input unless noted otherwise.

// Priority keywords. The high list is checked first: a text containing both
// "urgente" and "sem pressa" is high. Note "hoje" doubles as a date cue — a
// task for today is always high priority.
var (
	highPriorityKeywords = []string{
		"urgente", "urgência", "importante", "crítico", "crítica",
		"prioridade alta", "alta prioridade", "asap", "imediato",
		"imediatamente", "hoje", "agora", "!!",
	}

	lowPriorityKeywords = []string{
		"baixa prioridade", "prioridade baixa", "quando possível",
		"quando puder", "sem pressa", "eventualmente", "opcional",
	}
)

// Duration patterns. All three are tried and their contributions summed, so
// "1 hora e 30 minutos" yields 90.
var durationPatterns = []struct {
	re         *regexp.Regexp
	multiplier int
}{
	{regexp.MustCompile(`(\d+)\s*(?:hora|horas|h)\b`), 60},
	{regexp.MustCompile(`(\d+)\s*(?:minuto|minutos|min)\b`), 1},
	{regexp.MustCompile(`(\d+)\s*(?:pomodoro|pomodoros)\b`), 25},
}

// Default durations by task type, used only when no explicit duration
// matched. A slice, not a map: the first entry found in the text wins and
// that has to be deterministic.
var defaultDurations = []struct {
	keyword string
	minutes int
}{
	{"reunião", 60},
	{"reuniao", 60},
	{"meeting", 60},
	{"call", 30},
	{"ligação", 30},
	{"ligacao", 30},
	{"email", 15},
	{"e-mail", 15},
	{"review", 30},
	{"revisão", 30},
	{"revisao", 30},
}

// Weekday names with unaccented variants, in scan order.
var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"domingo", time.Sunday},
	{"segunda", time.Monday},
	{"terça", time.Tuesday},
	{"terca", time.Tuesday},
	{"quarta", time.Wednesday},
	{"quinta", time.Thursday},
	{"sexta", time.Friday},
	{"sábado", time.Saturday},
	{"sabado", time.Saturday},
}

// Recurrence keyword groups. Group order matters: the weekdays group comes
// before daily and weekly so that "todos os dias úteis" is not swallowed by
// its "todos os dias" fragment and "dias úteis" is not treated as generic
// weekly. A specific weekday ("toda segunda", "every monday") counts as
// plain weekly; the particular day is not tracked.
var recurrenceGroups = []struct {
	pattern  recurrence.Pattern
	keywords []string
}{
	{recurrence.Weekdays, []string{
		"dias úteis", "dias uteis", "dia útil", "dia util",
		"de segunda a sexta", "segunda a sexta", "weekdays",
	}},
	{recurrence.Daily, []string{
		"todo dia", "todos os dias", "diariamente", "diário", "diaria",
		"every day", "daily", "cada dia",
	}},
	{recurrence.Weekly, []string{
		"toda semana", "todas as semanas", "semanalmente", "semanal",
		"every week", "weekly", "cada semana",
	}},
	{recurrence.Weekly, []string{
		"toda segunda", "toda terça", "toda terca", "toda quarta",
		"toda quinta", "toda sexta", "todo sábado", "todo sabado",
		"todo domingo",
		"every monday", "every tuesday", "every wednesday",
		"every thursday", "every friday", "every saturday", "every sunday",
	}},
	{recurrence.Monthly, []string{
		"todo mês", "todos os meses", "mensalmente", "mensal",
		"every month", "monthly", "cada mês",
	}},
}

// Date expression patterns, scanned over lower-cased text.
var (
	slashDateRe  = regexp.MustCompile(`(\d{1,2})/(\d{1,2})(?:/(\d{4}))?`)
	dayOfMonthRe = regexp.MustCompile(`dia\s+(\d{1,2})`)
)

// timeOfDayIntroRe matches a time-of-day introduced by "às"/"as"
// ("às 14h", "as 14:30"). Duration extraction removes these spans first so
// that "14h" in "amanhã às 14h, 2 horas" is read as two o'clock, not as a
// fourteen-hour estimate.
var timeOfDayIntroRe = regexp.MustCompile(`(?i)(?:às|as)\s*\d{1,2}(?::\d{2})?\s*(?:h|horas)?`)

// Time-of-day patterns, most specific first. A pattern that matches with
// out-of-range values is skipped and the next one is tried.
var timeOfDayPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:às|as)\s*(\d{1,2})(?::(\d{2}))?\s*(?:h|horas)?`),
	regexp.MustCompile(`(\d{1,2}):(\d{2})`),
	regexp.MustCompile(`(?i)(\d{1,2})h(\d{2})?`),
}

// Title cleanup. Keyword groups are removed as whole words with rune-aware
// boundaries (\b in RE2 is ASCII-only and would leave "amanhã" or "às"
// untouched); structural patterns carry their own delimiters and are removed
// verbatim. Pass order follows the extractor pipeline: priority, relative
// dates, time-of-day, durations, explicit dates, exclamations, recurrence.
var (
	titlePriorityWordsRe = regexp.MustCompile(`(?i)urgente|importante|crítico|crítica|alta prioridade|baixa prioridade`)
	titleDateWordsRe     = regexp.MustCompile(`(?i)hoje|amanhã|amanha|próxima semana|proxima semana`)
	titleDurationRe      = regexp.MustCompile(`(?i)\b(\d+)\s*(hora|horas|h|minuto|minutos|min|pomodoro|pomodoros)\b`)
	titleTimeOfDayRe     = regexp.MustCompile(`(?i)(às|as)\s+\d{1,2}(:\d{2})?\s*(h|horas)?`)
	titleSlashDateRe     = regexp.MustCompile(`\d{1,2}/\d{1,2}(/\d{4})?`)
	titleExclamationsRe  = regexp.MustCompile(`!+`)

	// Punctuation stranded by the strips above: a comma or similar that
	// lost the phrase it was attached to ("Reunião , " after "2 horas" is
	// removed). Punctuation glued to a word ("pão, leite") is untouched.
	titleOrphanPunctRe = regexp.MustCompile(`(^|\s)[,;:.]+`)

	titleRecurrenceRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)todos os dias úteis|todos os dias uteis|dias úteis|dias uteis|dia útil|dia util|de segunda a sexta|segunda a sexta|weekdays`),
		regexp.MustCompile(`(?i)todo dia|todos os dias|diariamente|diário|diaria|every day|daily|cada dia`),
		regexp.MustCompile(`(?i)toda semana|todas as semanas|semanalmente|semanal|every week|weekly|cada semana`),
		regexp.MustCompile(`(?i)toda segunda|toda terça|toda terca|toda quarta|toda quinta|toda sexta|todo sábado|todo sabado|todo domingo`),
		regexp.MustCompile(`(?i)every (monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
		regexp.MustCompile(`(?i)todo mês|todos os meses|mensalmente|mensal|every month|monthly|cada mês`),
	}
)

// titleMinLength is the point below which a cleaned title is considered
// degenerate and the raw text is used instead.
const titleMinLength = 3

// titleFallbackLimit caps the fallback title taken from the raw text.
const titleFallbackLimit = 50
