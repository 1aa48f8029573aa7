// Package generate evaluates compiled definitions into records.
//
//	def, err := schema.Compile(doc)
//	if err != nil {
//	    return err
//	}
//	runner := generate.NewRunner(fake.New(), generate.WithSeed(42), generate.WithWorkers(4))
//	out, err := runner.Run(ctx, def, 10)
//
// Evaluation never fails once compilation succeeded; the only Run errors
// are a count below one and context cancellation.
package generate
