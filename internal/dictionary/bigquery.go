package dictionary

import (
	"context"
	"fmt"
	"regexp"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

var tableName = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+){1,2}$`)

// BigQuerySource reads the word_key column of a word table, restricted to one scope
// and one word length.
type BigQuerySource struct {
	Project  string
	Table    string
	Scope    string
	Length   int
	Location string
}

func (b BigQuerySource) Words(ctx context.Context) ([]string, error) {
	if !tableName.MatchString(b.Table) {
		return nil, fmt.Errorf("invalid BigQuery table %q", b.Table)
	}
	client, err := bigquery.NewClient(ctx, b.Project)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query(fmt.Sprintf("SELECT word_key FROM `%s` WHERE scope = @scope AND CHAR_LENGTH(word_key) = @length", b.Table))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "scope", Value: b.Scope},
		{Name: "length", Value: b.Length},
	}
	q.Location = b.Location
	if q.Location == "" {
		q.Location = "US"
	}

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}
		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return words, nil
}
