package normalize

import (
	"github.com/crashwx/crashwx/pkg/rawtable"
)

// accidentDraft is an accident row under construction.
type accidentDraft struct {
	i   int
	row AccidentRow
}

// stage transforms a draft in place. A non-empty result is the reason
// the row is dropped.
type stage func(d *accidentDraft) string

type accidentPipeline struct {
	tbl    *rawtable.Table
	idx    map[string]int
	stages []stage
}

func newAccidentPipeline(
	tbl *rawtable.Table,
	opts AccidentOptions,
) *accidentPipeline {
	p := &accidentPipeline{
		tbl: tbl,
		idx: make(map[string]int, len(AccidentColumns)),
	}
	for _, c := range AccidentColumns {
		p.idx[c] = tbl.Index(c)
	}
	p.stages = []stage{
		p.parseDate,
		yearRange(opts.YearMin, opts.YearMax),
		p.parseDatetime,
		p.parseCoordinates,
		p.parseCounts,
		p.streets,
		p.location,
		p.parseID,
	}
	return p
}

func (p *accidentPipeline) cell(d *accidentDraft, col string) string {
	return p.tbl.Cell(d.i, p.idx[col])
}

// run passes source row i through every stage.
func (p *accidentPipeline) run(i int) (AccidentRow, string) {
	d := &accidentDraft{i: i}
	for _, s := range p.stages {
		if reason := s(d); reason != "" {
			return AccidentRow{}, reason
		}
	}
	return d.row, ""
}

func (p *accidentPipeline) parseDate(d *accidentDraft) string {
	date, ok := ParseDate(p.cell(d, ColCrashDate))
	if !ok {
		return DropBadDate
	}
	d.row.CrashDate = date
	return ""
}

func yearRange(lo, hi int) stage {
	return func(d *accidentDraft) string {
		y := d.row.CrashDate.Year()
		if lo != 0 && y < lo {
			return DropOutOfRange
		}
		if hi != 0 && y > hi {
			return DropOutOfRange
		}
		return ""
	}
}

func (p *accidentPipeline) parseDatetime(d *accidentDraft) string {
	ts, ok := parseTimestamp(d.row.CrashDate, p.cell(d, ColCrashTime))
	if !ok {
		return DropBadDatetime
	}
	d.row.CrashDatetime = ts
	return ""
}

func (p *accidentPipeline) parseCoordinates(d *accidentDraft) string {
	lat, okLat := parseFloat(p.cell(d, ColLatitude))
	lon, okLon := parseFloat(p.cell(d, ColLongitude))
	if !okLat || !okLon {
		return DropBadCoords
	}
	d.row.Latitude = lat
	d.row.Longitude = lon
	return ""
}

func (p *accidentPipeline) parseCounts(d *accidentDraft) string {
	d.row.NumInjuries = parseCount(p.cell(d, ColInjured))
	d.row.NumDeaths = parseCount(p.cell(d, ColKilled))
	d.row.Severity = Severity(d.row.NumInjuries, d.row.NumDeaths)
	return ""
}

func (p *accidentPipeline) streets(d *accidentDraft) string {
	d.row.StreetName = StreetName(
		p.cell(d, ColOnStreet),
		p.cell(d, ColOffStreet),
	)
	d.row.StreetType = StreetTypeOn
	return ""
}

func (p *accidentPipeline) location(d *accidentDraft) string {
	d.row.Borough = nullableText(p.cell(d, ColBorough))
	d.row.ZipCode = nullableText(p.cell(d, ColZipCode))
	return ""
}

func (p *accidentPipeline) parseID(d *accidentDraft) string {
	id, ok := parseID(p.cell(d, ColCollisionID))
	if !ok {
		return DropBadID
	}
	d.row.ID = id
	return ""
}
