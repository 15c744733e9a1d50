// Package record holds the static doctor and patient summary shown on the card.
package record

import "strconv"

// Doctor is the attending physician shown in the card header.
type Doctor struct {
	Name      string `mapstructure:"name"`
	Specialty string `mapstructure:"specialty"`
}

// Patient is the patient summary shown in the card body.
type Patient struct {
	Name                    string `mapstructure:"name"`
	Age                     int    `mapstructure:"age"`
	MedicalRecord           int    `mapstructure:"medical_record"`
	Diagnosis               string `mapstructure:"diagnosis"`
	Intervention            string `mapstructure:"intervention"`
	PreAnestheticEvaluation string `mapstructure:"pre_anesthetic_evaluation"`
	RequestTimeDays         int    `mapstructure:"request_time_days"`
	Suspensions             int    `mapstructure:"suspensions"`
}

// Info is one labelled line of the patient summary.
type Info struct {
	Title string
	Value string
}

// DefaultDoctor returns the doctor shown when nothing is configured.
func DefaultDoctor() Doctor {
	return Doctor{
		Name:      "Dr. José Pedro Sans",
		Specialty: "Traumatología",
	}
}

// DefaultPatient returns the patient shown when nothing is configured.
func DefaultPatient() Patient {
	return Patient{
		Name:                    "Jorge Avendaño Pérez",
		Age:                     35,
		MedicalRecord:           77884,
		Diagnosis:               "Calcificación Talón",
		Intervention:            "Extirpación en talón",
		PreAnestheticEvaluation: "Sí",
		RequestTimeDays:         3,
		Suspensions:             2,
	}
}

// AgeLine renders the age the way the card prints it under the name.
func (p Patient) AgeLine() string {
	return strconv.Itoa(p.Age) + " años"
}

// Infos returns the labelled summary lines in display order.
func (p Patient) Infos() []Info {
	return []Info{
		{Title: "Ficha médica:", Value: strconv.Itoa(p.MedicalRecord)},
		{Title: "Diagnóstico:", Value: p.Diagnosis},
		{Title: "Intervención:", Value: p.Intervention},
		{Title: "Evaluación preanestésica:", Value: p.PreAnestheticEvaluation},
		{Title: "Tiempo de solicitud:", Value: strconv.Itoa(p.RequestTimeDays)},
		{Title: "Suspensiones:", Value: strconv.Itoa(p.Suspensions)},
	}
}
