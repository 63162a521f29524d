package constant

// Survey configuration: question ids, their display texts, the
// reference answers scored against, and the column headers used when
// exporting. All static, keyed by question id.

// QuestionOrder fixes iteration order for scoring and export.
var QuestionOrder = []string{"Q1", "Q2", "Q3"}

var QuestionColumns = map[string]string{
	"Q1": "What is your vision for a digital hospital?",
	"Q2": "How will your hospital benefit if your hospital is NABH compliant?",
	"Q3": "How will your hospital benefit if your hospital is ABDM compliant?",
}

var ModelAnswers = map[string]string{
	"Q1": "Paperless. No duplication of work. No manual entries in registers.",
	"Q2": "Better credit from government and insurance companies. Faster reimbursement of insurance claims. Better trust by patients.",
	"Q3": "Stand out from competition. Will get more patients. Patients will trust us more.",
}

var ScoreColumns = map[string]string{
	"Q1": "Score Q1",
	"Q2": "Score Q2",
	"Q3": "Score Q3",
}

const TotalColumn = "Total"

// TotalKey is the aggregate entry in a score map, alongside the
// question ids.
const TotalKey = "total"
