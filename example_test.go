package xgxresult_test

import (
	"encoding/json"
	"errors"
	"fmt"

	xgxresult "github.com/xgx-io/xgx-result"
)

func ExampleResult() {
	log := xgxresult.LoggerFunc(func(level xgxresult.Level, msg string) {
		fmt.Printf("[%s] %s\n", level, msg)
	})

	inner := xgxresult.New(nil).
		AppendError("sku is required", xgxresult.WithCode(400), xgxresult.WithLevel(xgxresult.LevelWarn))

	outer := xgxresult.New(log).AppendErrors(inner)
	xgxresult.New(log).AppendErrors(inner)

	fmt.Println(outer.Fail())
	// Output:
	// [warn] sku is required
	// true
}

func ExampleResult_AppendException() {
	res := xgxresult.New(nil).AppendException(errors.New("connection refused"), xgxresult.WithCode(503))

	fmt.Print(res.String())
	// Output:
	// Code: 503
	// Message: connection refused
}

func ExampleRecover() {
	build := func(msg string) (res *xgxresult.Result, err error) {
		defer xgxresult.Recover(&err)
		return xgxresult.New(nil).AppendError(msg), nil
	}

	_, err := build(" ")
	fmt.Println(xgxresult.IsInvalidArgument(err))
	// Output:
	// true
}

func ExampleTypedResult() {
	res := xgxresult.NewTypedWithValue(map[string]int{"total": 3}, nil).
		AddSuccessMessage("counted")

	b, _ := json.Marshal(res)
	fmt.Println(string(b))
	// Output:
	// {"Success":true,"Errors":[],"SuccessMessages":["counted"],"ResultObject":{"total":3}}
}

func ExampleCodec() {
	c := xgxresult.NewCodec()
	if err := xgxresult.Register[QuotaError](c, "quota_error"); err != nil {
		panic(err)
	}

	res := xgxresult.New(nil)
	payload := `{"Errors":[{"type":"quota_error","Message":"over quota","Tenant":"acme"}]}`
	if err := c.Unmarshal([]byte(payload), res); err != nil {
		panic(err)
	}

	quota := res.Errors()[0].(*QuotaError)
	fmt.Println(quota.Tenant, quota.Message)
	// Output:
	// acme over quota
}
