package flight

import (
	"log/slog"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
)

// Normalizer maps raw input records onto the canonical arrival record.
type Normalizer struct {
	Aliases  []FieldAlias
	Now      func() time.Time
	Location *time.Location
}

func NewNormalizer() *Normalizer {
	return &Normalizer{
		Aliases:  ArrivalAliases,
		Now:      time.Now,
		Location: time.Local,
	}
}

// Normalize resolves raw into an arrival record. It returns false when a
// mandatory field is missing; the rejection is written to runLog.
func (n *Normalizer) Normalize(raw dto.RawRecord, runLog *RunLog) (dto.FlightRecord, bool) {
	fields := ResolveAll(raw, n.Aliases)

	record := dto.FlightRecord{
		Companhia:         fields["companhia"],
		Cidade:            fields["cidade"],
		ICAO:              fields["icao"],
		Pais:              fields["pais"],
		Voo:               fields["voo"],
		Horario:           fields["horario"],
		Aeronave:          fields["aeronave"],
		Status:            fields["status"],
		TPS:               fields["tps"],
		HorarioConfirmado: nil,
		Frequencia:        dto.DefaultFrequencia,
		DataCadastro:      n.Now().UTC().Format(dto.ISOTimestampLayout),
	}

	if missing := dto.MissingFields(record); len(missing) > 0 {
		runLog.Addf("Record skipped - companhia: %q, cidade: %q", record.Companhia, record.Cidade)
		slog.Debug("record rejected",
			slog.String("missing", strings.Join(missing, ",")),
			slog.String("companhia", record.Companhia),
			slog.String("cidade", record.Cidade))
		return dto.FlightRecord{}, false
	}

	if record.Horario != "" {
		record.Horario = normalizeTimestamp(record.Horario, n.Location)
	}

	return record, true
}
