package dictionary

import "github.com/vocabquest/vocabquest-go/internal/model"

// seedEntries is the built-in starter word list
var seedEntries = []model.Definition{
	{
		Word:          "eloquent",
		Pronunciation: "/ˈɛləkwənt/",
		PartOfSpeech:  "adjective",
		Definition:    "Fluent or persuasive in speaking or writing.",
		Example:       "She was eloquent in her defense of the controversial policy.",
		Synonyms:      []string{"articulate", "persuasive", "fluent", "expressive"},
		Antonyms:      []string{"inarticulate", "tongue-tied", "hesitant"},
	},
	{
		Word:          "serendipity",
		Pronunciation: "/ˌsɛrənˈdɪpɪti/",
		PartOfSpeech:  "noun",
		Definition:    "The occurrence of events by chance in a happy or beneficial way.",
		Example:       "Finding the old bookshop was pure serendipity.",
		Synonyms:      []string{"chance", "fluke", "luck"},
		Antonyms:      []string{"misfortune"},
	},
	{
		Word:          "ephemeral",
		Pronunciation: "/ɪˈfɛmərəl/",
		PartOfSpeech:  "adjective",
		Definition:    "Lasting for a very short time.",
		Example:       "The beauty of the cherry blossoms is ephemeral.",
		Synonyms:      []string{"fleeting", "transient", "momentary"},
		Antonyms:      []string{"permanent", "enduring"},
	},
	{
		Word:          "ubiquitous",
		Pronunciation: "/juːˈbɪkwɪtəs/",
		PartOfSpeech:  "adjective",
		Definition:    "Present, appearing, or found everywhere.",
		Example:       "Smartphones have become ubiquitous in modern life.",
		Synonyms:      []string{"omnipresent", "pervasive", "universal"},
		Antonyms:      []string{"rare", "scarce"},
	},
	{
		Word:          "resilient",
		Pronunciation: "/rɪˈzɪliənt/",
		PartOfSpeech:  "adjective",
		Definition:    "Able to withstand or recover quickly from difficult conditions.",
		Example:       "The resilient community rebuilt after the flood.",
		Synonyms:      []string{"tough", "hardy", "adaptable"},
		Antonyms:      []string{"fragile", "vulnerable"},
	},
	{
		Word:          "meticulous",
		Pronunciation: "/mɪˈtɪkjʊləs/",
		PartOfSpeech:  "adjective",
		Definition:    "Showing great attention to detail; very careful and precise.",
		Example:       "He kept meticulous records of every transaction.",
		Synonyms:      []string{"careful", "thorough", "precise"},
		Antonyms:      []string{"careless", "sloppy"},
	},
}
