package dataprocessing

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"inscripcli/pkg/contracts/domain"
)

// maleExceptions lists given names ending in "A" that are nonetheless
// conventionally male. Checked before the female list and before the
// general trailing-A rule.
var maleExceptions = map[string]bool{
	"BAUTISTA": true,
	"LUCA":     true,
	"NICOLA":   true,
	"SANTINO":  true,
}

// femaleExceptions lists given names not ending in "A" that are
// conventionally female. All entries are uppercase with diacritics already
// stripped, matching the normalized candidate name.
var femaleExceptions = map[string]bool{
	"SOL":       true,
	"BELEN":     true,
	"RAQUEL":    true,
	"RUTH":      true,
	"ESTHER":    true,
	"ABIGAIL":   true,
	"JAZMIN":    true,
	"LOURDES":   true,
	"CARMEN":    true,
	"DOLORES":   true,
	"MERCEDES":  true,
	"PILAR":     true,
	"MONSERRAT": true,
	"MILAGROS":  true,
	"ANGELES":   true,
	"INES":      true,
	"LUZ":       true,
	"PAZ":       true,
	"ABRIL":     true,
	"NICOLE":    true,
	"ZOE":       true,
	"NOELIA":    true,
	"MAITE":     true,
	"ROCIO":     true,
	"GUADALUPE": true,
	"SOLEDAD":   true,
	"BEATRIZ":   true,
}

// activityCodeRe matches the leading parenthesized offering code of an
// activity string, e.g. "(CL_1436) " in "(CL_1436) Soldadura Básica".
var activityCodeRe = regexp.MustCompile(`^\([A-Z0-9_]+\)\s*`)

// diacriticStripper decomposes accented letters and discards the combining
// marks, leaving the base Latin letter.
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Classify fills in the derived fields of a record from its raw fields.
// The four derivations are mutually independent pure functions; Classify
// never fails, every code path lands in a defined fallback bucket.
func Classify(rec domain.EnrollmentRecord) domain.EnrollmentRecord {
	rec.Turno = ClassifyShift(rec.Comision)
	rec.TipoOferta = ClassifyOffering(rec.Actividad)
	rec.ActividadSimple = SimplifyActivity(rec.Actividad)
	rec.Genero = InferGender(rec.Alumno)
	return rec
}

// ClassifyAll classifies every record in place and returns the slice.
func ClassifyAll(records []domain.EnrollmentRecord) []domain.EnrollmentRecord {
	for i := range records {
		records[i] = Classify(records[i])
	}
	return records
}

// ClassifyShift derives the shift code from a commission string. Codes are
// checked in the fixed order TM, TT, TN and the first match wins; a string
// matching none classifies as Desconocido.
func ClassifyShift(comision string) string {
	for _, code := range []string{domain.ShiftMorning, domain.ShiftAfternoon, domain.ShiftNight} {
		if matchesShift(comision, code) {
			return code
		}
	}
	return domain.ShiftUnknown
}

func matchesShift(comision, code string) bool {
	return strings.Contains(comision, "- "+code) ||
		strings.Contains(comision, "-"+code) ||
		strings.HasSuffix(comision, code)
}

// ClassifyOffering derives the offering type from the coded prefix of an
// activity string. Prefixes are checked in the fixed order CL, CT, TR and
// the first match wins.
func ClassifyOffering(actividad string) string {
	switch {
	case strings.Contains(actividad, "(CL_"):
		return domain.OfferingJobTraining
	case strings.Contains(actividad, "(CT_"):
		return domain.OfferingCourse
	case strings.Contains(actividad, "(TR_"):
		return domain.OfferingPathway
	default:
		return domain.OfferingOther
	}
}

// SimplifyActivity strips the leading parenthesized offering code from an
// activity string. An absent activity yields the fixed fallback label.
func SimplifyActivity(actividad string) string {
	if actividad == "" {
		return domain.FallbackActivity
	}
	return activityCodeRe.ReplaceAllString(actividad, "")
}

// InferGender applies the name-based gender heuristic. The full name is
// expected in "Surname, GivenNames" form; without a comma no given name can
// be extracted and the result is Desconocido. Once a candidate name exists
// the heuristic always resolves: male exceptions first, then female
// exceptions, then the trailing-A rule. The result is a heuristic, not
// authoritative.
func InferGender(alumno string) string {
	// Split on every comma and take the segment right after the first one:
	// "Pérez Gómez, María, José" yields the candidate "María", not
	// "María, José".
	parts := strings.Split(alumno, ",")
	if len(parts) < 2 {
		return domain.GenderUnknown
	}

	// An empty given-name part still counts as an extracted candidate and
	// falls through to the general rule; only the no-comma case is unknown.
	var first string
	if given := strings.Fields(strings.TrimSpace(parts[1])); len(given) > 0 {
		first = given[0]
	}

	candidate := normalizeName(first)
	switch {
	case maleExceptions[candidate]:
		return domain.GenderMale
	case femaleExceptions[candidate]:
		return domain.GenderFemale
	case strings.HasSuffix(candidate, "A"):
		return domain.GenderFemale
	default:
		return domain.GenderMale
	}
}

// normalizeName uppercases a name and strips diacritics so that "Belén"
// and "BELEN" compare equal against the exception lists.
func normalizeName(name string) string {
	upper := strings.ToUpper(name)
	stripped, _, err := transform.String(diacriticStripper, upper)
	if err != nil {
		return upper
	}
	return stripped
}
