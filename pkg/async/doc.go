// Package async runs work in a goroutine and hands back a Future for its
// result.
//
//	future := async.Async(ctx, msg, send)
//	// ...
//	_, err := future.AwaitWithTimeout(5 * time.Second)
//
// A context that is already canceled completes the Future with the context
// error without calling the function.
package async
